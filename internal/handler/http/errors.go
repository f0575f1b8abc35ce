// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

var (
	ErrEmptyAuthorizationHeader   = errors.New("empty authorization header")
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
	ErrEmptyToken                 = errors.New("empty bearer token")
)
