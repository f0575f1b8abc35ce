// SPDX-License-Identifier: Apache-2.0

// Package models defines the shared data structures exchanged between the
// vault-console client, its local cache, and the CPM REST API.
//
// All entities here are server-owned: the console holds transient copies that
// are overwritten wholesale on every refetch. Enum-like fields carry string
// constants; values the server sends that the console does not recognise must
// be rendered as "unknown" and never cause a failure.
package models

import "time"

// RotationStatus describes where an account stands against its rotation
// policy.
type RotationStatus string

const (
	RotationNoPolicy RotationStatus = "no_policy"
	RotationCurrent  RotationStatus = "current"
	RotationDueSoon  RotationStatus = "due_soon"
	RotationOverdue  RotationStatus = "overdue"
)

// Known reports whether s is one of the enumerated rotation statuses.
func (s RotationStatus) Known() bool {
	switch s {
	case RotationNoPolicy, RotationCurrent, RotationDueSoon, RotationOverdue:
		return true
	}
	return false
}

// ValidationStatus describes the last known result of validating a stored
// credential against its target system.
type ValidationStatus string

const (
	ValidationValid    ValidationStatus = "valid"
	ValidationInvalid  ValidationStatus = "invalid"
	ValidationPending  ValidationStatus = "pending"
	ValidationUntested ValidationStatus = "untested"
)

// Known reports whether s is one of the enumerated validation statuses.
func (s ValidationStatus) Known() bool {
	switch s {
	case ValidationValid, ValidationInvalid, ValidationPending, ValidationUntested:
		return true
	}
	return false
}

// SystemType identifies the kind of target system an account belongs to.
type SystemType string

const (
	SystemLinux      SystemType = "linux"
	SystemWindows    SystemType = "windows"
	SystemUnix       SystemType = "unix"
	SystemMacOS      SystemType = "macos"
	SystemCiscoIOS   SystemType = "cisco_ios"
	SystemJuniper    SystemType = "juniper"
	SystemOracleDB   SystemType = "oracle_db"
	SystemMSSQL      SystemType = "mssql"
	SystemMySQL      SystemType = "mysql"
	SystemPostgreSQL SystemType = "postgresql"
	SystemMongoDB    SystemType = "mongodb"
	SystemAD         SystemType = "active_directory"
	SystemVMware     SystemType = "vmware_esxi"
	SystemWebApp     SystemType = "web_application"
)

// SystemTypes lists every system type the creation wizard offers, in display
// order.
func SystemTypes() []SystemType {
	return []SystemType{
		SystemLinux, SystemWindows, SystemUnix, SystemMacOS,
		SystemCiscoIOS, SystemJuniper,
		SystemOracleDB, SystemMSSQL, SystemMySQL, SystemPostgreSQL, SystemMongoDB,
		SystemAD, SystemVMware, SystemWebApp,
	}
}

// Account is the console-facing shape of a privileged credential on a target
// system. It is produced from the raw API payload by [RawAccount.Normalize]
// and is never authoritative: every mutation is followed by a refetch.
type Account struct {
	ID               string           `json:"id"`
	Owner            string           `json:"owner"`
	Name             string           `json:"name"`
	SystemType       SystemType       `json:"system_type"`
	Hostname         string           `json:"hostname"`
	Port             int              `json:"port"`
	ConnectionMethod string           `json:"connection_method"`
	PlatformID       string           `json:"platform_id"`
	AccountType      string           `json:"account_type"`
	Safe             string           `json:"safe"`
	Username         string           `json:"username"`
	RotationPolicyID string           `json:"rotation_policy_id"`
	RotationStatus   RotationStatus   `json:"rotation_status"`
	ValidationStatus ValidationStatus `json:"validation_status"`
	CreatedAt        *time.Time       `json:"created_at,omitempty"`
	UpdatedAt        *time.Time       `json:"updated_at,omitempty"`
}

// AccountStatistics holds the aggregate counters rendered in the dashboard
// header. The server derives them; the console refetches after any mutation.
type AccountStatistics struct {
	Total             int `json:"total"`
	Active            int `json:"active"`
	RequiringRotation int `json:"requiring_rotation"`
	Valid             int `json:"valid"`
	Invalid           int `json:"invalid"`
	Pending           int `json:"pending"`
	Untested          int `json:"untested"`
}

// CreateAccountRequest is the payload assembled by the creation wizard and
// posted once on submit.
type CreateAccountRequest struct {
	Name             string     `json:"name"`
	SystemType       SystemType `json:"system_type"`
	Hostname         string     `json:"hostname"`
	Port             int        `json:"port"`
	ConnectionMethod string     `json:"connection_method,omitempty"`
	Safe             string     `json:"safe"`
	Username         string     `json:"username"`
	Password         string     `json:"password"`
	PlatformID       string     `json:"platform_id,omitempty"`
	RotationPolicyID string     `json:"rotation_policy_id,omitempty"`
}
