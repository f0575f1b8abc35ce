// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// vault-console application. It is populated by merging values from
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the report downloads
	// directory and the local cache passphrase.
	App App `envPrefix:"APP_"`

	// Adapter holds the CPM API endpoint address and request timeout used
	// by the HTTP transport layer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local SQLite cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs (dashboard refresh).
	Workers Workers `envPrefix:"WORKERS_"`

	// Server holds settings for the development stub server binary. The
	// console itself never reads this section.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// DownloadsDir is the directory exported report files are written to.
	// Defaults to the current working directory when empty.
	// Env: APP_DOWNLOADS_DIR
	DownloadsDir string `env:"DOWNLOADS_DIR"`

	// CachePassphrase is the local passphrase used to derive the key that
	// encrypts cached credential secrets at rest. When empty, secrets are
	// never written to the local cache.
	// Env: APP_CACHE_PASSPHRASE
	CachePassphrase string `env:"CACHE_PASSPHRASE"`
}

// Adapter holds network settings for the outbound transport layer.
type Adapter struct {
	// APIAddress is the base URL of the CPM REST API
	// (e.g. "https://vault.example.com" or "localhost:8080").
	// Env: ADAPTER_API_ADDRESS
	APIAddress string `env:"API_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local cache database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite cache.
type DB struct {
	// DSN is the SQLite data source name. ":memory:" keeps the cache
	// in-process only.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds settings for the development stub server.
type Server struct {
	// HTTPAddress is the listen address of the stub API
	// (e.g. "localhost:8080").
	// Env: SERVER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// SignKey signs the JWT bearer tokens the stub issues on logon.
	// Env: SERVER_SIGN_KEY
	SignKey string `env:"SIGN_KEY"`

	// TokenTTL is the lifetime of issued bearer tokens.
	// Env: SERVER_TOKEN_TTL
	TokenTTL time.Duration `env:"TOKEN_TTL"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval defines how often the dashboard poller refetches the
	// account collection and statistics. Defaults to 30 seconds.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
