// SPDX-License-Identifier: Apache-2.0

// Package store implements the local SQLite cache for the console.
//
// The cache is never a source of truth: the accounts table holds the last
// fetched snapshot (for offline rendering), the secrets table holds sealed
// credential passwords, and the session/export tables keep the operator's
// token, bounded export history, and saved presets between runs. Every
// account write replaces the whole snapshot, matching the
// refetch-overwrites-cache contract of the API layer.
package store

import (
	"context"
	"time"

	"github.com/cpm-tools/vault-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Session is the locally persisted logon state.
type Session struct {
	Username string
	Token    string
	SavedAt  time.Time
}

// AccountCacheRepository stores the last fetched account snapshot and sealed
// secrets.
type AccountCacheRepository interface {
	// ReplaceAccounts overwrites the cached snapshot wholesale.
	ReplaceAccounts(ctx context.Context, accounts []models.Account) error

	// GetAccounts returns the cached snapshot in insertion order.
	GetAccounts(ctx context.Context) ([]models.Account, error)

	// SaveSecret upserts the sealed secret blob for one account.
	SaveSecret(ctx context.Context, accountID, blob string) error

	// GetSecret returns the sealed secret blob for one account, or
	// [ErrSecretNotFound] when none is cached.
	GetSecret(ctx context.Context, accountID string) (string, error)

	// DeleteSecret removes the sealed secret for one account. Removing a
	// secret that is not cached is not an error.
	DeleteSecret(ctx context.Context, accountID string) error
}

// SessionRepository persists the operator's logon session between runs.
type SessionRepository interface {
	// SaveSession upserts the single session row.
	SaveSession(ctx context.Context, session Session) error

	// GetSession returns the persisted session, or
	// [ErrLocalSessionNotFound] when the operator has never logged on.
	GetSession(ctx context.Context) (Session, error)

	// ClearSession removes the persisted session.
	ClearSession(ctx context.Context) error
}

// ExportRepository persists export history (bounded to the ten most recent
// entries) and user-defined presets.
type ExportRepository interface {
	// AppendHistory inserts one history entry and trims the table to the
	// ten most recent entries.
	AppendHistory(ctx context.Context, entry models.ExportHistoryEntry) error

	// GetHistory returns the retained history, most recent first.
	GetHistory(ctx context.Context) ([]models.ExportHistoryEntry, error)

	// SavePreset upserts a user-defined preset by name.
	SavePreset(ctx context.Context, preset models.ExportPreset) error

	// GetPresets returns all user-defined presets ordered by name.
	GetPresets(ctx context.Context) ([]models.ExportPreset, error)
}
