package main

import (
	"log"
	"net/http"

	_ "devconnect/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"devconnect/internal/auth"
	"devconnect/internal/cache"
	"devconnect/internal/config"
	"devconnect/internal/db"
	"devconnect/internal/github"
	"devconnect/internal/handler"
	"devconnect/internal/model"
	"devconnect/internal/repository"
	"devconnect/internal/router"
	"devconnect/internal/service"
)

// @title DevConnect API
// @version 1.0
// @description Social network for developers: profiles, posts, likes and comments.
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-auth-token
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Experience{},
		&model.Education{},
		&model.Post{},
		&model.Like{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Services
	authService := service.NewAuthService(userRepo, jwtService)
	profileService := service.NewProfileService(profileRepo, tokenStore)
	postService := service.NewPostService(postRepo, userRepo)

	// Handlers
	userHandler := handler.NewUserHandler(authService)
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService, github.NewClient(cfg.GithubToken))
	postHandler := handler.NewPostHandler(postService)

	router.Register(
		e,
		cfg,
		userHandler,
		authHandler,
		profileHandler,
		postHandler,
		tokenStore,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
