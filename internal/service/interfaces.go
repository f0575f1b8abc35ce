// SPDX-License-Identifier: Apache-2.0

// Package service implements the business layer between the TUI and the
// transport/storage layers.
//
// Services own the remote-view contract: the API is the single source of
// truth, every successful mutation triggers a refetch, and fetched
// collections overwrite the local cache wholesale. The local cache only
// serves reads when the API is unreachable.
package service

import (
	"context"
	"time"

	"github.com/cpm-tools/vault-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AccountView is what the account service hands the UI: the normalized
// collection plus the server-derived counters and an offline marker set when
// the data came from the local cache instead of the API.
type AccountView struct {
	Accounts   []models.Account
	Statistics models.AccountStatistics
	Offline    bool
}

// AccountService manages the account collection and per-account actions.
type AccountService interface {
	// List fetches accounts and statistics from the API and overwrites the
	// local cache. When the API is unreachable it falls back to the cached
	// snapshot and marks the view Offline; [adapter.ErrSessionExpired] is
	// never masked by the fallback.
	List(ctx context.Context) (AccountView, error)

	// Filter applies a case-insensitive substring match on name, hostname,
	// username and safe. Purely local, never triggers a fetch.
	Filter(accounts []models.Account, query string) []models.Account

	// Create posts the wizard payload, then refetches the collection.
	Create(ctx context.Context, req models.CreateAccountRequest) (AccountView, error)

	// Delete removes an account, drops its cached secret, then refetches.
	Delete(ctx context.Context, id string) (AccountView, error)

	// Rotate asks the backend to rotate the account's password, then
	// refetches. A business failure is returned in the ActionResponse, not
	// as an error.
	Rotate(ctx context.Context, id string) (models.ActionResponse, AccountView, error)

	// Validate asks the backend to validate the stored credential, then
	// refetches.
	Validate(ctx context.Context, id string) (models.ActionResponse, AccountView, error)

	// GetCredential fetches the detail projection. A revealed password is
	// sealed and cached so the detail screen still works offline.
	GetCredential(ctx context.Context, id string) (models.Credential, error)
}

// HistoryService serves the append-only validation and audit records of one
// account.
type HistoryService interface {
	ValidationHistory(ctx context.Context, accountID string) ([]models.ValidationHistoryEntry, error)
	AuditLogs(ctx context.Context, accountID string) ([]models.AuditLog, error)
}

// ExportService generates report files and manages presets and the bounded
// export history.
type ExportService interface {
	// Export posts opts to the API, writes the resulting file into the
	// downloads directory and records a history entry. The returned entry
	// carries the written file name. A zero-record report still produces a
	// file.
	Export(ctx context.Context, opts models.ExportOptions) (models.ExportHistoryEntry, error)

	// Presets returns the built-in presets followed by the user-defined
	// ones from the local store.
	Presets(ctx context.Context) ([]models.ExportPreset, error)

	// SavePreset persists a user-defined preset by name.
	SavePreset(ctx context.Context, preset models.ExportPreset) error

	// History returns up to the ten most recent exports, newest first.
	History(ctx context.Context) ([]models.ExportHistoryEntry, error)
}

// SessionService owns logon, session persistence and expiry detection.
type SessionService interface {
	// Logon authenticates against the API and persists the session.
	Logon(ctx context.Context, username, password string) error

	// Restore loads the persisted session and arms the adapter with its
	// token. Returns [ErrNoSession] when there is nothing to restore and
	// [ErrSessionExpired] when the stored token is past its expiry.
	Restore(ctx context.Context) (string, error)

	// Logout clears the persisted session and the adapter token.
	Logout(ctx context.Context) error
}

// RefreshJob periodically refetches the account collection in the
// background so the dashboard stays current without user interaction.
type RefreshJob interface {
	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to 30 seconds if interval is zero or negative. Any
	// previously running job is stopped before the new one begins. Results
	// are delivered through the channel returned by Updates.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// Updates returns the channel on which refresh results are delivered.
	Updates() <-chan RefreshResult
}

// RefreshResult is one outcome of a background refresh tick.
type RefreshResult struct {
	View AccountView
	Err  error
}
