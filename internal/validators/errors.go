// SPDX-License-Identifier: Apache-2.0

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName         = errors.New("account name is required")
	ErrInvalidSystemType = errors.New("invalid system type")
	ErrEmptyHostname     = errors.New("hostname is required")
	ErrInvalidPort       = errors.New("port must be between 1 and 65535")
	ErrEmptySafe         = errors.New("safe is required")
	ErrEmptyUsername     = errors.New("username is required")
	ErrEmptyPassword     = errors.New("password is required")
	ErrInvalidFormat     = errors.New("invalid export format")
	ErrEmptyFields       = errors.New("export field list cannot be empty")
	ErrInvalidDateRange  = errors.New("date range start must not be after end")
)
