package main

import (
	"context"
	"errors"
	"log"
	"time"

	"devconnect/internal/auth"
	"devconnect/internal/cache"
	"devconnect/internal/config"
	"devconnect/internal/db"
	"devconnect/internal/model"
	"devconnect/internal/repository"
	"devconnect/internal/service"
)

type seedUser struct {
	Name     string
	Email    string
	Password string
	Profile  service.ProfileInput
	Posts    []string
}

var demoUsers = []seedUser{
	{
		Name:     "Jane Cooper",
		Email:    "jane@devconnect.dev",
		Password: "password123",
		Profile: service.ProfileInput{
			Company:        "Acme Corp",
			Website:        "janecooper.dev",
			Location:       "Berlin, Germany",
			Status:         "Senior Developer",
			Skills:         []string{"Go", "MySQL", "Redis", "Docker"},
			Bio:            "Backend engineer, ten years of building APIs.",
			GithubUsername: "janecooper",
			Twitter:        "twitter.com/janecooper",
		},
		Posts: []string{
			"Just shipped a new release. Ask me anything about database migrations.",
			"Hot take: integration tests catch more bugs than unit tests.",
		},
	},
	{
		Name:     "Tom Hardy",
		Email:    "tom@devconnect.dev",
		Password: "password123",
		Profile: service.ProfileInput{
			Status: "Junior Developer",
			Skills: []string{"JavaScript", "HTML", "CSS"},
			Bio:    "Learning something new every day.",
		},
		Posts: []string{
			"First week at my new job. The codebase is huge!",
		},
	},
	{
		Name:     "Sara Lim",
		Email:    "sara@devconnect.dev",
		Password: "password123",
		Profile: service.ProfileInput{
			Company:  "Freelance",
			Location: "Singapore",
			Status:   "Full Stack Developer",
			Skills:   []string{"Go", "React", "PostgreSQL"},
			Linkedin: "linkedin.com/in/saralim",
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Experience{},
		&model.Education{},
		&model.Post{},
		&model.Like{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	authService := service.NewAuthService(userRepo, jwtService)
	profileService := service.NewProfileService(profileRepo, tokenStore)
	postService := service.NewPostService(postRepo, userRepo)

	ctx := context.Background()
	created, skipped := 0, 0

	for _, su := range demoUsers {
		_, err := authService.Register(ctx, su.Name, su.Email, su.Password)
		switch {
		case errors.Is(err, service.ErrUserExists):
			log.Printf("User %s already exists, skipping", su.Email)
			skipped++
			continue
		case err != nil:
			log.Fatalf("Failed to register %s: %v", su.Email, err)
		}
		created++

		user, err := userRepo.FindByEmail(ctx, su.Email)
		if err != nil {
			log.Fatalf("Failed to look up %s: %v", su.Email, err)
		}

		if _, err := profileService.Upsert(ctx, user.ID, su.Profile); err != nil {
			log.Fatalf("Failed to create profile for %s: %v", su.Email, err)
		}

		for _, text := range su.Posts {
			if _, err := postService.Create(ctx, user.ID, text); err != nil {
				log.Fatalf("Failed to create post for %s: %v", su.Email, err)
			}
			// Posts share a created_at-ordered feed; space them out so the
			// newest-first ordering is stable across seed runs.
			time.Sleep(10 * time.Millisecond)
		}

		log.Printf("Seeded %s with a profile and %d posts", su.Email, len(su.Posts))
	}

	log.Println("Seed completed successfully!")
	log.Printf("  - Users created: %d", created)
	log.Printf("  - Users skipped: %d", skipped)
}
