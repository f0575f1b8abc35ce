// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"context"
	"strings"

	"github.com/cpm-tools/vault-console/models"
)

const (
	FieldName       = "name"
	FieldSystemType = "system_type"
	FieldHostname   = "hostname"
	FieldPort       = "port"
	FieldSafe       = "safe"
	FieldUsername   = "username"
	FieldPassword   = "password"
	FieldFormat     = "format"
	FieldFields     = "fields"
	FieldDateRange  = "date_range"
)

type AccountValidator struct {
}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateAccountRequest:
		return v.validateCreateAccount(ctx, value, fields...)
	case *models.CreateAccountRequest:
		return v.validateCreateAccount(ctx, *value, fields...)

	case models.ExportOptions:
		return v.validateExportOptions(ctx, value, fields...)
	case *models.ExportOptions:
		return v.validateExportOptions(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateCreateAccount(_ context.Context, req models.CreateAccountRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldSystemType, FieldHostname, FieldPort, FieldSafe, FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(req.Name) == "" {
				return ErrEmptyName
			}
		case FieldSystemType:
			found := false
			for _, t := range models.SystemTypes() {
				if req.SystemType == t {
					found = true
					break
				}
			}
			if !found {
				return ErrInvalidSystemType
			}
		case FieldHostname:
			if strings.TrimSpace(req.Hostname) == "" {
				return ErrEmptyHostname
			}
		case FieldPort:
			// port 0 means "use the system type's default", anything else
			// must be a real port number
			if req.Port < 0 || req.Port > 65535 {
				return ErrInvalidPort
			}
		case FieldSafe:
			if strings.TrimSpace(req.Safe) == "" {
				return ErrEmptySafe
			}
		case FieldUsername:
			if strings.TrimSpace(req.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateExportOptions(_ context.Context, opts models.ExportOptions, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFormat, FieldFields, FieldDateRange}
	}

	for _, f := range fields {
		switch f {
		case FieldFormat:
			switch opts.Format {
			case models.FormatCSV, models.FormatXLSX, models.FormatJSON, models.FormatPDF:
			default:
				return ErrInvalidFormat
			}
		case FieldFields:
			if len(opts.Fields) == 0 {
				return ErrEmptyFields
			}
		case FieldDateRange:
			if opts.DateFrom != nil && opts.DateTo != nil && opts.DateFrom.After(*opts.DateTo) {
				return ErrInvalidDateRange
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
