// SPDX-License-Identifier: Apache-2.0

package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a API base address, e.g. "https://vault.example.com" or "localhost:8080"
//	-d local cache DSN (SQLite path or ":memory:")
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g. "15s")
//	-refresh-interval dashboard refresh interval (e.g. "30s")
//	-downloads directory exported reports are written to
//	-server-address stub server listen address
func ParseFlags() *StructuredConfig {
	return parseFlagsFromArgs(os.Args[1:])
}

func parseFlagsFromArgs(args []string) *StructuredConfig {
	var apiAddress string
	var cacheDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var refreshInterval time.Duration
	var downloadsDir string
	var serverAddress string

	fs := flag.NewFlagSet("vault-console", flag.ContinueOnError)
	fs.StringVar(&apiAddress, "a", "", "CPM API base address")
	fs.StringVar(&cacheDSN, "d", "", "local cache DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "json config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "json config file path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "outbound request timeout")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "dashboard refresh interval")
	fs.StringVar(&downloadsDir, "downloads", "", "report downloads directory")
	fs.StringVar(&serverAddress, "server-address", "", "stub server listen address")

	// flag errors are not fatal here: unknown flags are left for the test
	// binary's own flag set
	_ = fs.Parse(args)

	return &StructuredConfig{
		App: App{
			DownloadsDir: downloadsDir,
		},
		Adapter: Adapter{
			APIAddress:     apiAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: cacheDSN},
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		Server: Server{
			HTTPAddress: serverAddress,
		},
		JSONFilePath: jsonConfigPath,
	}
}
