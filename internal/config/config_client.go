// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"time"
)

// ClientApp holds application settings derived from the shared structured
// config.
type ClientApp struct {
	// Version is the running application version.
	Version string
	// DownloadsDir is where exported report files are written.
	DownloadsDir string
	// CachePassphrase derives the key that encrypts cached secrets at rest.
	CachePassphrase string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// APIAddress is the CPM API base URL used by the client.
	APIAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups local storage settings.
type ClientStorage struct {
	// DSN is the SQLite connection string for the local cache.
	DSN string
}

// ClientWorkers contains background job settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the dashboard poller runs.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains local storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return &ClientConfig{
		App: ClientApp{
			Version:         cfg.App.Version,
			DownloadsDir:    cfg.App.DownloadsDir,
			CachePassphrase: cfg.App.CachePassphrase,
		},
		Adapter: ClientAdapter{
			APIAddress:     cfg.Adapter.APIAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DSN: cfg.Storage.DB.DSN,
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}, nil
}
