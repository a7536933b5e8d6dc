package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
	"github.com/zeusthug/zeus-api/internal/config"
	"github.com/zeusthug/zeus-api/internal/database"
	"github.com/zeusthug/zeus-api/internal/handlers"
	"github.com/zeusthug/zeus-api/internal/llm"
	authmw "github.com/zeusthug/zeus-api/internal/middleware"
	"github.com/zeusthug/zeus-api/internal/services"
)

func main() {
	cfg, err := config.Load()
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
	llmClient := llm.NewClient(cfg.MistralAPIKey, cfg.MistralModel, cfg.LLMTimeout)

	keyHandler := handlers.NewKeyHandler(apiKeyService)
	askHandler := handlers.NewAskHandler(llmClient)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-Key"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	app.Get("/", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"message": "Welcome to the Zeus AI API!"})
	})

	app.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	app.Post("/create-key", keyHandler.Create)

	ask := app.Group("")
	if cfg.RequireAPIKey {
		ask.Use(authmw.APIKeyAuth(apiKeyService))
	}
	ask.Get("/ask", askHandler.Ask)

	if cfg.AdminEnabled() {
		adminService := services.NewAdminService(cfg.AdminSecret, cfg.AdminTokenExpiry)
		adminHandler := handlers.NewAdminHandler(adminService, apiKeyService)

		app.Post("/admin/login", adminHandler.Login)

		admin := app.Group("/admin")
		admin.Use(authmw.AdminAuth(adminService))
		admin.Get("/keys", adminHandler.ListKeys)
		admin.Delete("/keys/:key", adminHandler.DeleteKey)
	}

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		for range ticker.C {
			removed, err := apiKeyService.CleanupExpired(context.Background())
			if err != nil {
				log.Printf("Failed to clean up expired api keys: %v", err)
				continue
			}
			if removed > 0 {
				log.Printf("Removed %d expired api keys", removed)
			}
		}
	}()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Server starting on %s", addr)
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}
