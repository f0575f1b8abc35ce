// SPDX-License-Identifier: Apache-2.0

package models

import (
	"strings"
	"time"
)

// Display defaults applied during normalization when the API omits a field.
const (
	defaultDisplay      = "N/A"
	defaultPolicyID     = "no_policy"
	defaultAccountType  = "local"
	defaultSafeName     = "Default"
	defaultSystemType   = SystemType("unknown")
	defaultObjectOwner  = defaultDisplay
	defaultConnectionMd = defaultDisplay
)

// RawAccount mirrors every field-name variant the backend has historically
// used for account payloads. Older API revisions sent hostname_ip,
// last_validation_status and policy_id; newer ones send hostname,
// validation_status and rotation_policy_id. Decoding into this struct and
// calling [RawAccount.Normalize] gives the single console-facing [Account]
// shape regardless of revision.
type RawAccount struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`

	Owner     string `json:"owner"`
	OwnerName string `json:"owner_name"`
	UserID    string `json:"user_id"`

	Name        string `json:"name"`
	DisplayName string `json:"display_name"`

	SystemType string `json:"system_type"`
	Platform   string `json:"platform"`

	Hostname   string `json:"hostname"`
	HostnameIP string `json:"hostname_ip"`
	Address    string `json:"address"`
	Port       int    `json:"port"`

	ConnectionMethod string `json:"connection_method"`
	PlatformID       string `json:"platform_id"`
	AccountType      string `json:"account_type"`

	Safe     string `json:"safe"`
	SafeName string `json:"safe_name"`

	Username string `json:"username"`
	UserName string `json:"user_name"`

	RotationPolicyID string `json:"rotation_policy_id"`
	RotationPolicy   string `json:"rotation_policy"`
	PolicyID         string `json:"policy_id"`

	RotationStatus string `json:"rotation_status"`

	ValidationStatus     string `json:"validation_status"`
	LastValidationStatus string `json:"last_validation_status"`

	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// Normalize maps the raw payload onto the console-facing [Account] shape.
//
// The mapping is total: every known backend key variant has exactly one
// target, missing optional fields get the documented defaults ("N/A" for
// display strings, "untested" for validation status, "no_policy" for the
// rotation policy), and enum fields are lower-cased but otherwise passed
// through so that unknown server values survive to be rendered as "unknown".
// Normalize never fails.
func (r RawAccount) Normalize() Account {
	a := Account{
		ID:               firstNonEmpty(r.ID, r.AccountID),
		Owner:            firstNonEmpty(r.Owner, r.OwnerName, r.UserID, defaultObjectOwner),
		Name:             firstNonEmpty(r.Name, r.DisplayName, defaultDisplay),
		SystemType:       SystemType(strings.ToLower(firstNonEmpty(r.SystemType, r.Platform, string(defaultSystemType)))),
		Hostname:         firstNonEmpty(r.Hostname, r.HostnameIP, r.Address, defaultDisplay),
		Port:             r.Port,
		ConnectionMethod: firstNonEmpty(r.ConnectionMethod, defaultConnectionMd),
		PlatformID:       r.PlatformID,
		AccountType:      firstNonEmpty(r.AccountType, defaultAccountType),
		Safe:             firstNonEmpty(r.Safe, r.SafeName, defaultSafeName),
		Username:         firstNonEmpty(r.Username, r.UserName, defaultDisplay),
		RotationPolicyID: firstNonEmpty(r.RotationPolicyID, r.RotationPolicy, r.PolicyID, defaultPolicyID),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}

	a.RotationStatus = RotationStatus(strings.ToLower(strings.TrimSpace(r.RotationStatus)))
	if a.RotationStatus == "" {
		if a.RotationPolicyID == defaultPolicyID {
			a.RotationStatus = RotationNoPolicy
		} else {
			a.RotationStatus = RotationCurrent
		}
	}

	a.ValidationStatus = ValidationStatus(strings.ToLower(strings.TrimSpace(firstNonEmpty(r.ValidationStatus, r.LastValidationStatus))))
	if a.ValidationStatus == "" {
		a.ValidationStatus = ValidationUntested
	}

	return a
}

// RawCredential mirrors the credential-detail payload: the account field
// variants plus the secret and database-connection fields that only appear on
// the detail endpoint.
type RawCredential struct {
	RawAccount

	Password          string `json:"password"`
	VerificationError string `json:"verification_error"`

	DatabaseHost   string `json:"database_host"`
	DBHost         string `json:"db_host"`
	DatabasePort   int    `json:"database_port"`
	DatabaseName   string `json:"database_name"`
	DBName         string `json:"db_name"`
	DatabaseSchema string `json:"database_schema"`
	SSLEnabled     bool   `json:"ssl_enabled"`
}

// Normalize maps the raw detail payload onto the console-facing [Credential]
// shape. Like [RawAccount.Normalize], the mapping is total and never fails.
func (r RawCredential) Normalize() Credential {
	return Credential{
		Account:           r.RawAccount.Normalize(),
		Password:          r.Password,
		VerificationError: r.VerificationError,
		DatabaseHost:      firstNonEmpty(r.DatabaseHost, r.DBHost),
		DatabasePort:      r.DatabasePort,
		DatabaseName:      firstNonEmpty(r.DatabaseName, r.DBName),
		DatabaseSchema:    r.DatabaseSchema,
		SSLEnabled:        r.SSLEnabled,
	}
}

// NormalizeAll maps a slice of raw payloads, preserving order.
func NormalizeAll(raw []RawAccount) []Account {
	accounts := make([]Account, 0, len(raw))
	for _, r := range raw {
		accounts = append(accounts, r.Normalize())
	}
	return accounts
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
