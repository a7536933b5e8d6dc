package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/zeusthug/zeus-api/internal/config"
	"github.com/zeusthug/zeus-api/internal/database"
	"github.com/zeusthug/zeus-api/internal/services"
)

func main() {
	cfg, err := config.LoadDatabase()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	apiKeyService := services.NewAPIKeyService(db)

	apiKey, err := apiKeyService.Issue(ctx)
	if err != nil {
		log.Fatalf("Failed to issue api key: %v", err)
	}

	expiresAt := apiKey.CreatedAt.Add(services.KeyExpirationDays * 24 * time.Hour)
	fmt.Printf("api key: %s\nexpires: %s\n", apiKey.Key, expiresAt.Format(time.RFC3339))
}
