// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the configuration view consumed by the development stub
// server binary.
type ServerConfig struct {
	// HTTPAddress is the listen address of the stub API.
	HTTPAddress string
	// SignKey signs issued bearer tokens.
	SignKey string
	// TokenTTL is the lifetime of issued bearer tokens.
	TokenTTL time.Duration
}

// GetServerConfig builds the stub-server view from the merged structured
// configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return &ServerConfig{
		HTTPAddress: cfg.Server.HTTPAddress,
		SignKey:     cfg.Server.SignKey,
		TokenTTL:    cfg.Server.TokenTTL,
	}, nil
}
