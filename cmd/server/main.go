package main

import (
	"log"

	"book-api/internal/application/services"
	"book-api/internal/config"
	"book-api/internal/delivery/httpapi"
	"book-api/internal/infrastructure"
	"book-api/internal/infrastructure/db/gormdb"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db, err := gormdb.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	redisService := infrastructure.NewRedisService(cfg)
	defer redisService.Close()

	bookRepo := gormdb.NewBookRepository(db)
	userRepo := gormdb.NewUserRepository(db)

	tokenService := infrastructure.NewTokenService(cfg.JWTSecret, redisService)
	mailer := infrastructure.NewMailer(cfg.SendgridAPIKey, cfg.MailSenderName, cfg.MailSenderAddr)

	bookService := services.NewBookService(bookRepo, redisService)
	authService := services.NewAuthService(userRepo, tokenService, mailer)

	e := httpapi.NewRouter(bookService, authService, tokenService, cfg)

	log.Println("Server running on :" + cfg.Port)
	log.Fatal(e.Start(":" + cfg.Port))
}
