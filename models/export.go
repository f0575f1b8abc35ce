// SPDX-License-Identifier: Apache-2.0

package models

import (
	"fmt"
	"time"
)

// ExportFormat selects the file format produced by the report-export
// endpoint.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
	FormatJSON ExportFormat = "json"
	FormatPDF  ExportFormat = "pdf"
)

// MIMEType returns the content type used when saving a report in format f.
// Unrecognised formats fall back to application/octet-stream.
func (f ExportFormat) MIMEType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatJSON:
		return "application/json"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// Extension returns the file extension (without dot) for format f.
func (f ExportFormat) Extension() string {
	switch f {
	case FormatCSV, FormatXLSX, FormatJSON, FormatPDF:
		return string(f)
	default:
		return "bin"
	}
}

// ExportOptions is the configuration value posted to the report-export
// endpoint. It is entirely client-side until the export call; presets
// overwrite it wholesale.
type ExportOptions struct {
	Preset       string       `json:"preset,omitempty"`
	Format       ExportFormat `json:"format"`
	Fields       []string     `json:"fields"`
	DateFrom     *time.Time   `json:"date_from,omitempty"`
	DateTo       *time.Time   `json:"date_to,omitempty"`
	OnlyFailures bool         `json:"only_failures"`
	OnlyOverdue  bool         `json:"only_overdue"`
	IncludeAudit bool         `json:"include_audit"`
}

// FileName builds the download name for a report generated from o on the
// given date: "<preset>-report-YYYY-MM-DD.<ext>". An empty preset falls back
// to "accounts".
func (o ExportOptions) FileName(date time.Time) string {
	preset := o.Preset
	if preset == "" {
		preset = "accounts"
	}
	return fmt.Sprintf("%s-report-%s.%s", preset, date.Format("2006-01-02"), o.Format.Extension())
}

// ExportPreset is a named, saved export configuration. Applying a preset
// replaces the whole current [ExportOptions] value.
type ExportPreset struct {
	Name    string        `json:"name"`
	Options ExportOptions `json:"options"`
}

// BuiltinPresets returns the presets shipped with the console. User-defined
// presets from the local store are appended after these.
func BuiltinPresets() []ExportPreset {
	return []ExportPreset{
		{
			Name: "all-accounts",
			Options: ExportOptions{
				Preset: "all-accounts",
				Format: FormatCSV,
				Fields: []string{"name", "system_type", "hostname", "username", "safe", "rotation_status", "validation_status"},
			},
		},
		{
			Name: "critical-failures",
			Options: ExportOptions{
				Preset:       "critical-failures",
				Format:       FormatXLSX,
				Fields:       []string{"name", "hostname", "username", "validation_status", "verification_error"},
				OnlyFailures: true,
			},
		},
		{
			Name: "rotation-overdue",
			Options: ExportOptions{
				Preset:      "rotation-overdue",
				Format:      FormatCSV,
				Fields:      []string{"name", "hostname", "username", "rotation_status", "rotation_policy_id"},
				OnlyOverdue: true,
			},
		},
		{
			Name: "audit-trail",
			Options: ExportOptions{
				Preset:       "audit-trail",
				Format:       FormatJSON,
				Fields:       []string{"account_id", "action", "result", "actor", "timestamp"},
				IncludeAudit: true,
			},
		},
	}
}

// ExportResult is the report-export endpoint's response body.
type ExportResult struct {
	// Content is the generated report payload, base64-encoded by the server
	// for binary formats and plain text for csv/json.
	Content     []byte `json:"content"`
	RecordCount int    `json:"recordCount"`
}

// ExportHistoryEntry records one past export. The console keeps at most the
// ten most recent entries in its local store.
type ExportHistoryEntry struct {
	ID          string       `json:"id"`
	Preset      string       `json:"preset"`
	Format      ExportFormat `json:"format"`
	FileName    string       `json:"file_name"`
	RecordCount int          `json:"record_count"`
	ExportedAt  time.Time    `json:"exported_at"`
}
