// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for communicating with the
// CPM REST API.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrSessionExpired] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/cpm-tools/vault-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the CPM API.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Logon or session restore.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Logon authenticates with the API using username/password credentials
	// and stores the returned bearer token via SetToken. Token issuance
	// itself is the server's concern.
	Logon(ctx context.Context, req models.LogonRequest) (string, error)

	// ListAccounts fetches the full account collection. The result is
	// normalized from whatever key variants the server revision uses and
	// replaces the caller's view wholesale; it is never merged.
	ListAccounts(ctx context.Context) ([]models.Account, error)

	// GetStatistics fetches the server-derived aggregate counters. Called
	// after every successful mutation in addition to the initial load.
	GetStatistics(ctx context.Context) (models.AccountStatistics, error)

	// GetCredential fetches the detail projection of a single account,
	// including the stored secret when the caller has reveal permission.
	GetCredential(ctx context.Context, id string) (models.Credential, error)

	// CreateAccount posts the payload assembled by the creation wizard.
	// Exactly one request is issued per call.
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) (models.Account, error)

	// DeleteAccount removes the account with the given id. The caller is
	// responsible for the explicit user confirmation step.
	DeleteAccount(ctx context.Context, id string) error

	// RotatePassword asks the backend to rotate the account's credential.
	// A business failure arrives as Success=false inside a 200 response.
	RotatePassword(ctx context.Context, id string) (models.ActionResponse, error)

	// ValidateCredential asks the backend to validate the stored credential
	// against its target system and returns the resulting status.
	ValidateCredential(ctx context.Context, id string) (models.ActionResponse, error)

	// GetValidationHistory fetches the append-only validation records for
	// one account.
	GetValidationHistory(ctx context.Context, id string) ([]models.ValidationHistoryEntry, error)

	// GetAuditLogs fetches the append-only audit records for one account.
	GetAuditLogs(ctx context.Context, id string) ([]models.AuditLog, error)

	// ExportReport posts the export configuration and returns the generated
	// report payload with its record count. A zero record count still
	// yields a (possibly empty) payload.
	ExportReport(ctx context.Context, opts models.ExportOptions) (models.ExportResult, error)
}
