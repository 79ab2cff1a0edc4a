// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/nsheremet/securetext/internal/auth"
	"github.com/nsheremet/securetext/internal/config"
	"github.com/nsheremet/securetext/internal/logger"
	"github.com/nsheremet/securetext/internal/session"
	"github.com/nsheremet/securetext/internal/store"
	"github.com/nsheremet/securetext/internal/supervisor"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("securetext-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Info().Msg("starting server")
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	authenticator := auth.New(storages.UserRepository, storages.ChallengeRepository, log, cfg.Server.IdleTimeout)
	registry := session.NewRegistry()
	router := session.NewRouter(registry, storages.UserRepository, log, cfg.Server.IdleTimeout)

	sup, err := supervisor.Listen(cfg.Server.ListenAddress, authenticator, router, log, cfg.Server.IdleTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("error binding listener")
	}

	if err := sup.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return
	}

	log.Info().Msg("server shut down cleanly")
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
