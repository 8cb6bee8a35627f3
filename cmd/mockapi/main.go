package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/wadoud17/maktabati-pos/internal/config"
	"github.com/wadoud17/maktabati-pos/internal/mockapi"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Seed the in-memory data set
	store := mockapi.NewStore()

	// Setup routes
	router := mockapi.Setup(cfg, store)

	port := cfg.API.MockPort
	if port == "" {
		port = "7189"
	}

	log.Printf("Starting %s development backend on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
