// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// Credential is the detail projection of an account, fetched individually by
// id. It is a superset of [Account]: it adds the stored secret, the last
// verification outcome, and database-connection specifics for database-backed
// system types.
//
// Password is write-sensitive: the API only includes it when the caller has
// reveal permission, and the console encrypts it before caching locally.
type Credential struct {
	Account

	Password          string `json:"password,omitempty"`
	VerificationError string `json:"verification_error,omitempty"`

	// Database-connection fields, populated only for database system types.
	DatabaseHost   string `json:"database_host,omitempty"`
	DatabasePort   int    `json:"database_port,omitempty"`
	DatabaseName   string `json:"database_name,omitempty"`
	DatabaseSchema string `json:"database_schema,omitempty"`
	SSLEnabled     bool   `json:"ssl_enabled,omitempty"`
}

// HistoryResult is the outcome enum shared by validation-history entries and
// audit-log records.
type HistoryResult string

const (
	ResultSuccess HistoryResult = "success"
	ResultFailure HistoryResult = "failure"
	ResultWarning HistoryResult = "warning"
	ResultInfo    HistoryResult = "info"
)

// Known reports whether r is one of the enumerated history results.
func (r HistoryResult) Known() bool {
	switch r {
	case ResultSuccess, ResultFailure, ResultWarning, ResultInfo:
		return true
	}
	return false
}

// ValidationHistoryEntry is one append-only record of a past validation
// attempt against a credential. Read-only from the console's perspective.
type ValidationHistoryEntry struct {
	ID        string        `json:"id"`
	AccountID string        `json:"account_id"`
	Result    HistoryResult `json:"result"`
	Message   string        `json:"message,omitempty"`
	Actor     string        `json:"actor,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// AuditLog is one append-only record describing a past rotation, validation,
// or access action on an account.
type AuditLog struct {
	ID        string            `json:"id"`
	AccountID string            `json:"account_id"`
	Action    string            `json:"action"`
	Result    HistoryResult     `json:"result"`
	Actor     string            `json:"actor"`
	Timestamp time.Time         `json:"timestamp"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}
