package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"gamestore_backend/internal/app/router"
	authadapters "gamestore_backend/internal/feature/auth/adapters"
	authhandler "gamestore_backend/internal/feature/auth/transport/handler"
	authusecase "gamestore_backend/internal/feature/auth/usecase"
	gameadapters "gamestore_backend/internal/feature/games/adapters"
	gamehandler "gamestore_backend/internal/feature/games/transport/handler"
	gameusecase "gamestore_backend/internal/feature/games/usecase"
	libraryadapters "gamestore_backend/internal/feature/library/adapters"
	libraryhandler "gamestore_backend/internal/feature/library/transport/handler"
	libraryusecase "gamestore_backend/internal/feature/library/usecase"
	promotionadapters "gamestore_backend/internal/feature/promotions/adapters"
	promotionhandler "gamestore_backend/internal/feature/promotions/transport/handler"
	promotionusecase "gamestore_backend/internal/feature/promotions/usecase"
	useradapters "gamestore_backend/internal/feature/users/adapters"
	userhandler "gamestore_backend/internal/feature/users/transport/handler"
	userusecase "gamestore_backend/internal/feature/users/usecase"
	infradb "gamestore_backend/internal/platform/db"
	jwtmw "gamestore_backend/internal/platform/jwt"
)

// Seed administrator defaults, overridable via environment.
const (
	defaultAdminName     = "Admin"
	defaultAdminEmail    = "admin@gamestore.com"
	defaultAdminPassword = "Admin123@"
)

func main() {
	// Optional .env for local development; real deployments set the environment directly.
	_ = godotenv.Load()

	// The server must not start without a complete token configuration.
	jwtCfg, err := jwtmw.LoadConfig()
	if err != nil {
		log.Fatalf("JWT configuration: %v", err)
	}

	db := infradb.Open()

	// Repositories
	authUserRepo := authadapters.NewUserRepository(db)
	userRepo := useradapters.NewUserRepository(db)
	gameRepo := gameadapters.NewGameRepository(db)
	gamePromoFinder := gameadapters.NewPromotionFinder(db)
	catalogFinder := libraryadapters.NewCatalogFinder(db)
	userGameRepo := libraryadapters.NewUserGameRepository(db)
	promotionRepo := promotionadapters.NewPromotionRepository(db)
	promotionGameFinder := promotionadapters.NewGameFinder(db)

	// Usecases
	tokens := jwtmw.NewGenerator(jwtCfg)
	authUC := authusecase.NewAuthUsecase(authUserRepo, tokens)
	userUC := userusecase.NewUserUsecase(userRepo)
	gameUC := gameusecase.NewGameUsecase(gameRepo, gamePromoFinder)
	libraryUC := libraryusecase.NewLibraryUsecase(catalogFinder, catalogFinder, userGameRepo)
	promotionUC := promotionusecase.NewPromotionUsecase(promotionRepo, promotionGameFinder)

	// The seed administrator must exist before the first request.
	if err := authUC.EnsureAdmin(context.Background(), adminName(), adminEmail(), adminPassword()); err != nil {
		log.Fatalf("failed to ensure admin account: %v", err)
	}
	slog.Info("admin account ensured", "email", adminEmail())

	// Handlers
	handlers := router.Handlers{
		Auth:       authhandler.NewAuthHandler(authUC),
		Users:      userhandler.NewUserHandler(userUC),
		Games:      gamehandler.NewGameHandler(gameUC),
		Library:    libraryhandler.NewLibraryHandler(libraryUC),
		Promotions: promotionhandler.NewPromotionHandler(promotionUC),
	}

	r := router.New(handlers, jwtCfg)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func adminName() string {
	if v := os.Getenv("ADMIN_NAME"); v != "" {
		return v
	}
	return defaultAdminName
}

func adminEmail() string {
	if v := os.Getenv("ADMIN_EMAIL"); v != "" {
		return v
	}
	return defaultAdminEmail
}

func adminPassword() string {
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		return v
	}
	return defaultAdminPassword
}
