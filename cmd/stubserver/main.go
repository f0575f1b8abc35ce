// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/cpm-tools/vault-console/internal/config"
	handlerhttp "github.com/cpm-tools/vault-console/internal/handler/http"
	"github.com/cpm-tools/vault-console/internal/logger"
	"github.com/cpm-tools/vault-console/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("stubserver")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	handler := handlerhttp.NewHandler(cfg, log)

	srv, err := server.NewServer(handler, *cfg, log)
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
