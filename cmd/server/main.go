// Copyright 2026 LegalDoc Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/legaldoc-app/legaldoc-server/internal/adapter"
	"github.com/legaldoc-app/legaldoc-server/internal/config"
	"github.com/legaldoc-app/legaldoc-server/internal/handler"
	"github.com/legaldoc-app/legaldoc-server/internal/logger"
	"github.com/legaldoc-app/legaldoc-server/internal/server"
	"github.com/legaldoc-app/legaldoc-server/internal/service"
	"github.com/legaldoc-app/legaldoc-server/internal/store"
	"github.com/legaldoc-app/legaldoc-server/internal/workers"
	"github.com/legaldoc-app/legaldoc-server/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("legaldoc-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.DB.Close()

	if err := migrations.Migrate(storages.DB.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	services := service.NewServices(storages, cfg.Auth, log)

	assist, err := adapter.NewHTTPAssistAdapter(cfg.Services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating assist adapter")
	}

	handlers, err := handler.NewHandlers(services, assist, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	workers.NewWorkers(cfg.Workers, storages, log).Run(ctx)

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
