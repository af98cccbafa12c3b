// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/verdantlabs/wastesentry/internal/analyzer"
	"github.com/verdantlabs/wastesentry/internal/audit"
	"github.com/verdantlabs/wastesentry/internal/config"
	"github.com/verdantlabs/wastesentry/internal/feed"
	"github.com/verdantlabs/wastesentry/internal/handler"
	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/internal/server"
	"github.com/verdantlabs/wastesentry/internal/service"
	"github.com/verdantlabs/wastesentry/internal/store"
	"github.com/verdantlabs/wastesentry/internal/workers"
	"github.com/verdantlabs/wastesentry/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("wastesentry-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewStorages()
	chain := audit.NewChain()
	sceneAnalyzer := analyzer.NewGeminiAnalyzer(cfg.Analyzer, log)
	camera := feed.NewSimulatedCamera("", cfg.Feed.FrameInterval, log)

	services, err := service.NewServices(storages, chain, sceneAnalyzer, camera, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	servers, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(services, cfg, log).Run()

	servers.RunServer()
}

func printBuildInfo() {
	info := models.NewBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
