package main

import (
	"context"
	"fmt"

	"github.com/matu-sky/qrcode1/internal/config"
	myHTTP "github.com/matu-sky/qrcode1/internal/handler/http"
	"github.com/matu-sky/qrcode1/internal/logger"
	"github.com/matu-sky/qrcode1/internal/qrpayload"
	"github.com/matu-sky/qrcode1/internal/server"
	"github.com/matu-sky/qrcode1/internal/service"
	"github.com/matu-sky/qrcode1/internal/store"
	"github.com/matu-sky/qrcode1/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("qrcode-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, *cfg, log)

	version := cfg.App.Version
	if version == "" {
		version = buildVersion
	}

	encoder := qrpayload.NewEncoder(cfg.App.DisplayBaseURL)
	handler := myHTTP.NewHandler(services, encoder, version, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
