// SPDX-License-Identifier: Apache-2.0

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrSessionExpired      = errors.New("session expired")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
