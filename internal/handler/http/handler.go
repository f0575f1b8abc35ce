// SPDX-License-Identifier: Apache-2.0

package http

import (
	"github.com/cpm-tools/vault-console/internal/config"
	"github.com/cpm-tools/vault-console/internal/logger"
)

// Handler owns the stub's in-memory state and the route handlers operating
// on it.
type Handler struct {
	store *memoryStore
	cfg   config.ServerConfig

	logger *logger.Logger
}

func NewHandler(cfg *config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		store:  newMemoryStore(),
		cfg:    *cfg,
		logger: logger,
	}
}
