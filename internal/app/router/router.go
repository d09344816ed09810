// Package router assembles the Gin engine and the API route groups.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "gamestore_backend/internal/feature/auth/transport/handler"
	gamehandler "gamestore_backend/internal/feature/games/transport/handler"
	libraryhandler "gamestore_backend/internal/feature/library/transport/handler"
	promotionhandler "gamestore_backend/internal/feature/promotions/transport/handler"
	userhandler "gamestore_backend/internal/feature/users/transport/handler"
	"gamestore_backend/internal/platform/http/handler"
	"gamestore_backend/internal/platform/http/middleware"
	jwtmw "gamestore_backend/internal/platform/jwt"
)

// Handlers bundles every feature handler wired by the bootstrap.
type Handlers struct {
	Auth       *authhandler.AuthHandler
	Users      *userhandler.UserHandler
	Games      *gamehandler.GameHandler
	Library    *libraryhandler.LibraryHandler
	Promotions *promotionhandler.PromotionHandler
}

// New builds the engine with the full route table.
// Reads of the catalog and promotions are public; the library and profile
// routes need a valid token; catalog, promotion and user management need
// the admin role on top of that.
func New(h Handlers, jwtCfg jwtmw.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), middleware.Recovery())

	r.GET("/healthz", handler.Health)

	r.POST("/auth/register", h.Auth.Register)
	r.POST("/auth/login", h.Auth.Login)

	r.GET("/games", h.Games.List)
	r.GET("/games/:id", h.Games.GetByID)

	r.GET("/promotions", h.Promotions.List)
	r.GET("/promotions/:id", h.Promotions.GetByID)

	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(jwtCfg))
	{
		auth.GET("/library", h.Library.List)
		auth.POST("/library/purchase", h.Library.Purchase)
		auth.GET("/library/:gameId", h.Library.Owns)

		auth.GET("/users/me", h.Users.GetMe)
		auth.PUT("/users/me", h.Users.UpdateMe)

		admin := auth.Group("/")
		admin.Use(jwtmw.AdminRequired())
		{
			admin.POST("/games", h.Games.Create)
			admin.PUT("/games/:id", h.Games.Update)
			admin.DELETE("/games/:id", h.Games.Delete)

			admin.POST("/promotions", h.Promotions.Create)
			admin.PUT("/promotions/:id", h.Promotions.Update)
			admin.DELETE("/promotions/:id", h.Promotions.Delete)

			admin.GET("/users", h.Users.List)
			admin.GET("/users/:id", h.Users.GetByID)
			admin.DELETE("/users/:id", h.Users.Delete)
		}
	}

	return r
}
