// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultAPIAddress      = "http://localhost:8080"
	defaultRequestTimeout  = 15 * time.Second
	defaultRefreshInterval = 30 * time.Second
	defaultCacheDSN        = "vault-console.db"
	defaultServerAddress   = "localhost:8080"
	defaultServerSignKey   = "dev-only-sign-key"
	defaultServerTokenTTL  = 8 * time.Hour
)

// applyDefaults fills zero-valued fields with the documented defaults. It
// runs after all sources have been merged, so explicit values always win.
func (c *StructuredConfig) applyDefaults() {
	if strings.TrimSpace(c.Adapter.APIAddress) == "" {
		c.Adapter.APIAddress = defaultAPIAddress
	}
	if c.Adapter.RequestTimeout <= 0 {
		c.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if c.Workers.RefreshInterval <= 0 {
		c.Workers.RefreshInterval = defaultRefreshInterval
	}
	if strings.TrimSpace(c.Storage.DB.DSN) == "" {
		c.Storage.DB.DSN = defaultCacheDSN
	}
	if strings.TrimSpace(c.Server.HTTPAddress) == "" {
		c.Server.HTTPAddress = defaultServerAddress
	}
	if c.Server.SignKey == "" {
		c.Server.SignKey = defaultServerSignKey
	}
	if c.Server.TokenTTL <= 0 {
		c.Server.TokenTTL = defaultServerTokenTTL
	}
}

// validate checks the merged configuration for values that would make the
// client unusable at runtime.
func (c *StructuredConfig) validate() error {
	if c.Adapter.RequestTimeout < time.Second {
		return fmt.Errorf("%w: request timeout %s is below 1s", ErrInvalidConfig, c.Adapter.RequestTimeout)
	}
	if c.Workers.RefreshInterval < 5*time.Second {
		return fmt.Errorf("%w: refresh interval %s is below 5s", ErrInvalidConfig, c.Workers.RefreshInterval)
	}
	return nil
}
