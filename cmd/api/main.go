package main

import (
	"log"

	"github.com/luzbrill/pos-terminal/internal/application/service"
	"github.com/luzbrill/pos-terminal/internal/config"
	"github.com/luzbrill/pos-terminal/internal/infrastructure/client"
	"github.com/luzbrill/pos-terminal/internal/infrastructure/store"
	"github.com/luzbrill/pos-terminal/internal/presentation/http/handler"
	"github.com/luzbrill/pos-terminal/internal/presentation/http/routes"
	"github.com/luzbrill/pos-terminal/pkg/utils"
)

func main() {
	cfg := config.Load()

	verifier := utils.NewTokenVerifier(cfg.Auth.JWTSecret)

	cartStore := store.NewCartStore(cfg.Session.CartTTL)
	cartStore.StartSweeper(cfg.Session.SweepInterval)

	salesClient := client.NewSalesClient(cfg.Upstream.SalesURL, cfg.Upstream.Timeout)
	catalogClient := client.NewCatalogClient(cfg.Upstream.CatalogURL, cfg.Upstream.Timeout)
	directoryClient := client.NewDirectoryClient(cfg.Upstream.DirectoryURL, cfg.Upstream.Timeout)

	cartService := service.NewCartService(cartStore, catalogClient, directoryClient)
	checkoutService := service.NewCheckoutService(cartStore, salesClient, catalogClient, directoryClient)

	cartHandler := handler.NewCartHandler(cartService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	lookupHandler := handler.NewLookupHandler(catalogClient, directoryClient)

	router := routes.Setup(cfg, verifier, cartHandler, checkoutHandler, lookupHandler)

	log.Printf("Starting %s on port %s (env: %s)", cfg.App.Name, cfg.App.Port, cfg.App.Env)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
