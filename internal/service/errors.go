// SPDX-License-Identifier: Apache-2.0

package service

import "errors"

var (
	// ErrNoSession is returned by Restore when the operator has never
	// logged on from this machine.
	ErrNoSession = errors.New("no persisted session")

	// ErrSessionExpired is returned when the persisted token is past its
	// expiry and a fresh logon is required.
	ErrSessionExpired = errors.New("session expired, logon required")

	// ErrWrongCredentials is returned when the API rejects the
	// username/password pair.
	ErrWrongCredentials = errors.New("invalid username or password")

	// ErrAccountNotFound is returned when an action targets an account the
	// server no longer knows, typically because another operator deleted it.
	ErrAccountNotFound = errors.New("account not found on server")

	// ErrSecretUnavailable is returned when a credential has no revealed
	// password and no sealed copy in the local cache.
	ErrSecretUnavailable = errors.New("secret not available")
)
