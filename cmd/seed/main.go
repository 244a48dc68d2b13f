package main

import (
	"context"
	"os"
	"time"

	"github.com/amigdala/cms-backend/internal/config"
	contentrepo "github.com/amigdala/cms-backend/internal/content/repository"
	contentsvc "github.com/amigdala/cms-backend/internal/content/service"
	"github.com/amigdala/cms-backend/internal/database"
	"github.com/amigdala/cms-backend/internal/seed"
	"github.com/amigdala/cms-backend/internal/settings"
	"github.com/amigdala/cms-backend/internal/users"
	"github.com/amigdala/cms-backend/pkg/logger"
)

// Standalone database initializer: creates the default section documents,
// settings singleton and admin user when the collections are empty.
// Safe to run repeatedly; existing data is never overwritten.
func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		logger.Fatalf("cannot connect to MongoDB: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()
	db := client.Database(cfg.MongoDB.Database)

	contentService := contentsvc.New(contentrepo.NewMongoRepo(db.Collection("content")))
	settingsRepo := settings.NewMongoRepository(db.Collection("settings"))
	userSvc := users.NewService(users.NewMongoRepository(db.Collection("users")))

	if err := seed.Run(ctx, contentService, settingsRepo, userSvc, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		logger.Fatalf("seeding failed: %v", err)
	}
	logger.Infof("database seeding complete")
}
