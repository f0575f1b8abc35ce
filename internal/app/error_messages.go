// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// vault-console API handlers and the client-side error mapper.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied username/password
	// combination does not match any operator record.
	MsgInvalidLoginPassword = "invalid username/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAccountNotFound is returned when a read, action, or delete
	// operation targets an account that does not exist.
	MsgAccountNotFound = "account not found"

	// MsgAccountNameTaken is returned when a creation attempt is rejected
	// because an account with the same name already exists in the safe.
	MsgAccountNameTaken = "account name already exists in safe"

	// MsgActionAlreadyRunning is returned when a rotation or validation is
	// requested while another one is still in progress for the same account.
	MsgActionAlreadyRunning = "another action is already running for this account"

	// MsgTargetUnreachable is returned when the backend cannot reach the
	// account's target system to rotate or validate the credential.
	MsgTargetUnreachable = "target system unreachable"

	// MsgUnknownExportFormat is returned when an export request names a
	// format the report generator does not support.
	MsgUnknownExportFormat = "unknown export format"
)
