package main

import (
	"fmt"

	"github.com/cardfolio/cardfolio/internal/adapter"
	"github.com/cardfolio/cardfolio/internal/client"
	"github.com/cardfolio/cardfolio/internal/config"
	"github.com/cardfolio/cardfolio/internal/logger"
	"github.com/cardfolio/cardfolio/internal/service"
	"github.com/cardfolio/cardfolio/internal/store"
	"github.com/cardfolio/cardfolio/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("cardfolio-client")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Client, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(cfg.Client, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storages")
	}

	services := service.NewClientServices(storages, serverAdapter, cfg.Client, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
