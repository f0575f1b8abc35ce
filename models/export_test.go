// SPDX-License-Identifier: Apache-2.0

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExportOptions_FileName(t *testing.T) {
	date := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)

	opts := ExportOptions{Preset: "critical-failures", Format: FormatXLSX}
	assert.Equal(t, "critical-failures-report-2026-08-25.xlsx", opts.FileName(date))

	opts = ExportOptions{Format: FormatCSV}
	assert.Equal(t, "accounts-report-2026-08-25.csv", opts.FileName(date))
}

func TestExportFormat_MIMEType(t *testing.T) {
	assert.Equal(t, "text/csv", FormatCSV.MIMEType())
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", FormatXLSX.MIMEType())
	assert.Equal(t, "application/json", FormatJSON.MIMEType())
	assert.Equal(t, "application/pdf", FormatPDF.MIMEType())
	assert.Equal(t, "application/octet-stream", ExportFormat("doc").MIMEType())
}

func TestBuiltinPresets_OverwriteWholesale(t *testing.T) {
	presets := BuiltinPresets()
	assert.NotEmpty(t, presets)

	var critical *ExportPreset
	for i := range presets {
		if presets[i].Name == "critical-failures" {
			critical = &presets[i]
		}
	}
	if assert.NotNil(t, critical) {
		assert.True(t, critical.Options.OnlyFailures)
		assert.Equal(t, FormatXLSX, critical.Options.Format)
		assert.Equal(t, "critical-failures", critical.Options.Preset)
	}
}
