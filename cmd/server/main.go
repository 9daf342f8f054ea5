package main

import (
	"context"
	"fmt"

	"github.com/akhmadiev/storefront/internal/config"
	myHTTP "github.com/akhmadiev/storefront/internal/handler/http"
	"github.com/akhmadiev/storefront/internal/logger"
	"github.com/akhmadiev/storefront/internal/server"
	"github.com/akhmadiev/storefront/internal/service"
	"github.com/akhmadiev/storefront/internal/store"
	"github.com/akhmadiev/storefront/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("storefront-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg, log)
	handler := myHTTP.NewHandler(services, cfg.Server, log)
	sweeper := workers.NewResetTokenSweeper(services.AuthService, cfg.Workers, log)

	srv, err := server.NewServer(handler, sweeper, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
