package main

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/wadoud17/maktabati-pos/internal/application/service"
	"github.com/wadoud17/maktabati-pos/internal/config"
	"github.com/wadoud17/maktabati-pos/internal/infrastructure/api"
	"github.com/wadoud17/maktabati-pos/internal/infrastructure/session"
	"github.com/wadoud17/maktabati-pos/internal/presentation/cli"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize the persisted session store
	store := session.NewFileStore(cfg.Session.File)

	// Initialize the API client; the session is wired in afterwards so the
	// client always sees the current token.
	var sessionService *service.SessionService
	client := api.NewClient(cfg.API.BaseURL, func() string {
		if sessionService == nil {
			return ""
		}
		return sessionService.Token()
	})
	sessionService = service.NewSessionService(client, store)

	// Initialize services
	guard := service.NewGuard(sessionService)
	cart := service.NewCartService()
	catalog := service.NewCatalogService(client)
	dashboard := service.NewDashboardService(client)

	log.Printf("Starting %s against %s", cfg.App.Name, cfg.API.BaseURL)

	ui := cli.New(sessionService, guard, cart, catalog, dashboard,
		cfg.API.DefaultTVA, bufio.NewReader(os.Stdin), os.Stdout)
	ui.Run(context.Background())
}
