// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"
	"strings"

	"github.com/cpm-tools/vault-console/internal/adapter"
	"github.com/cpm-tools/vault-console/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrSessionExpired):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return ErrWrongCredentials
		}
		return ErrSessionExpired

	case errors.Is(err, adapter.ErrNotFound):
		return ErrAccountNotFound
	}

	return err
}

// extractBody extracts the body from a message of the form
// "session expired: <body>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
