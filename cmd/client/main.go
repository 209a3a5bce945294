// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/focus-on-it/internal/adapter"
	"github.com/MKhiriev/focus-on-it/internal/client"
	"github.com/MKhiriev/focus-on-it/internal/config"
	"github.com/MKhiriev/focus-on-it/internal/logger"
	"github.com/MKhiriev/focus-on-it/internal/service"
	"github.com/MKhiriev/focus-on-it/internal/tui"
	"github.com/MKhiriev/focus-on-it/internal/utils"
	"github.com/MKhiriev/focus-on-it/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("focus-on-it-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("focus-on-it-client", cfg.LogFile)

	userID, err := utils.ParseUserIDFromJWT(cfg.Adapter.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("error reading user id from token")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, userID, cfg.Adapter, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	resubscriber := workers.NewResubscribeWorker(services.Resubscribers(), cfg.Workers.ResubscribeInterval, log)

	app, err := client.NewApp(services, ui, workers.NewWorkers(resubscriber), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
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
