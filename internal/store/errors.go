// SPDX-License-Identifier: Apache-2.0

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLocalSessionNotFound is returned when no logon session has been
	// persisted yet.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrSecretNotFound is returned when no sealed secret is cached for the
	// requested account.
	ErrSecretNotFound = errors.New("cached secret not found")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
