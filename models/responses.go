// SPDX-License-Identifier: Apache-2.0

package models

// AccountsEnvelope decodes the collection responses of every API revision.
// Current servers nest the collection under "data"; legacy ones under
// "accounts". Exactly one of the two is populated.
type AccountsEnvelope struct {
	Data     []RawAccount `json:"data"`
	Accounts []RawAccount `json:"accounts"`
}

// Collection returns whichever key the server populated, preferring "data".
func (e AccountsEnvelope) Collection() []RawAccount {
	if len(e.Data) > 0 {
		return e.Data
	}
	return e.Accounts
}

// ActionResponse is the body the API returns for rotate and validate calls.
// A business failure is reported inside a 200 response with Success=false and
// must map to a failed/invalid status on the row, not to a client error.
type ActionResponse struct {
	Success          bool             `json:"success"`
	ValidationStatus ValidationStatus `json:"validation_status,omitempty"`
	RotationStatus   RotationStatus   `json:"rotation_status,omitempty"`
	Message          string           `json:"message,omitempty"`
}

// HistoryEnvelope wraps validation-history and audit-log collections.
type HistoryEnvelope struct {
	Validations []ValidationHistoryEntry `json:"validations,omitempty"`
	AuditLogs   []AuditLog               `json:"audit_logs,omitempty"`
	Length      int                      `json:"length,omitempty"`
}

// LogonRequest is the body posted to the auth endpoint. Token issuance itself
// is the server's concern; the console only carries the credentials.
type LogonRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LogonResponse carries the bearer token returned by a successful logon.
type LogonResponse struct {
	Token string `json:"token"`
}
