package main

import (
	"fmt"

	"github.com/matu-sky/qrcode1/internal/adapter"
	"github.com/matu-sky/qrcode1/internal/client"
	"github.com/matu-sky/qrcode1/internal/config"
	"github.com/matu-sky/qrcode1/internal/logger"
	"github.com/matu-sky/qrcode1/internal/qrpayload"
	"github.com/matu-sky/qrcode1/internal/store"
	"github.com/matu-sky/qrcode1/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("qrcode-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	state, err := store.NewLocalStateStorage(cfg.Storage.StatePath)
	if err != nil {
		log.Fatal().Err(err).Msg("create local state storage")
	}

	encoder := qrpayload.NewEncoder(cfg.App.DisplayBaseURL)

	ui, err := tui.New(serverAdapter, state, encoder, buildVersion, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log)
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
