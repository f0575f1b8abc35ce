// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/cpm-tools/vault-console/internal/adapter"
	"github.com/cpm-tools/vault-console/internal/client"
	"github.com/cpm-tools/vault-console/internal/config"
	"github.com/cpm-tools/vault-console/internal/logger"
	"github.com/cpm-tools/vault-console/internal/service"
	"github.com/cpm-tools/vault-console/internal/store"
	"github.com/cpm-tools/vault-console/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("vault-console")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating local storage")
	}

	services := service.NewClientServices(cfg, storages, serverAdapter)
	ui := tui.New(services, cfg.Workers.RefreshInterval, log)

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
