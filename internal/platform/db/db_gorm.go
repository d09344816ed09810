// Package db opens the GORM database connection used by every repository.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gamestore_backend/internal/domain/entity"
)

// Open connects to the database selected by DB_DRIVER (mysql, postgres or
// sqlite; mysql by default) and runs the schema migration. Networked drivers
// retry for up to a minute so the server survives a database that is still
// starting up.
func Open() *gorm.DB {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "mysql"
	}

	var (
		db  *gorm.DB
		err error
	)

	switch driver {
	case "sqlite":
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "gamestore.db"
		}
		db, err = gorm.Open(gsqlite.Open(path), &gorm.Config{TranslateError: true})
		if err != nil {
			log.Fatalf("DB connect failed: %v", err)
		}
	case "postgres":
		db = openWithRetry(gpostgres.Open(postgresDSN()))
	case "mysql":
		db = openWithRetry(gmysql.Open(mysqlDSN()))
	default:
		log.Fatalf("unsupported DB_DRIVER: %q", driver)
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Game{},
		&entity.Promotion{},
		&entity.UserGame{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func mysqlDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_NAME"))
}

func postgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))
}

func openWithRetry(dialector gorm.Dialector) *gorm.DB {
	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
		if err == nil {
			return db
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}
