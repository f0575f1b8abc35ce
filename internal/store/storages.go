// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"

	"github.com/cpm-tools/vault-console/internal/config"
	"github.com/cpm-tools/vault-console/internal/logger"
)

// ClientStorages groups all local repositories into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// Accounts is the SQLite-backed snapshot of the last fetched account
	// collection plus sealed secrets.
	Accounts AccountCacheRepository

	// Session persists the operator's logon state between runs.
	Session SessionRepository

	// Exports persists the bounded export history and user presets.
	Exports ExportRepository
}

// NewClientStorages initialises the local storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Accounts: NewAccountCacheRepository(db, logger),
		Session:  NewSessionRepository(db, logger),
		Exports:  NewExportRepository(db, logger),
	}, nil
}
