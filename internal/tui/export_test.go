// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpm-tools/vault-console/models"
)

func TestExportApplyPresetReplacesConfiguration(t *testing.T) {
	m := newExportModel()

	// dirty the configuration so the overwrite is observable
	m = m.cycleFormat()
	m.options.OnlyFailures = true
	m = m.toggleField("owner")
	m.fieldIdx = 5

	preset := models.BuiltinPresets()[1] // critical-failures
	m = m.applyPreset(preset)

	assert.Equal(t, preset.Options.Format, m.options.Format)
	assert.Equal(t, preset.Options.Fields, m.options.Fields)
	assert.Equal(t, preset.Options.OnlyFailures, m.options.OnlyFailures)
	assert.Equal(t, preset.Options.OnlyOverdue, m.options.OnlyOverdue)
	assert.Equal(t, preset.Options.IncludeAudit, m.options.IncludeAudit)
	assert.Nil(t, m.options.DateFrom)
	assert.Equal(t, 0, m.fieldIdx, "field cursor resets with the new selection")

	t.Run("later toggles never mutate the preset", func(t *testing.T) {
		before := append([]string(nil), preset.Options.Fields...)
		m = m.toggleField(preset.Options.Fields[0])
		assert.Equal(t, before, preset.Options.Fields)
	})
}

func TestExportToggleField(t *testing.T) {
	m := newExportModel()

	t.Run("toggling off removes the column", func(t *testing.T) {
		require.True(t, m.hasField("safe"))
		next := m.toggleField("safe")
		assert.False(t, next.hasField("safe"))
	})

	t.Run("toggling on keeps catalog order", func(t *testing.T) {
		require.False(t, m.hasField("owner"))
		next := m.toggleField("owner")
		assert.Equal(t, []string{"name", "owner", "system_type", "hostname", "safe", "username", "rotation_status", "validation_status"}, next.options.Fields)
	})

	t.Run("audit columns outside the catalog survive", func(t *testing.T) {
		audit := m.applyPreset(models.BuiltinPresets()[3]) // audit-trail
		next := audit.toggleField("hostname")
		assert.True(t, next.hasField("hostname"))
		assert.True(t, next.hasField("actor"))
		assert.True(t, next.hasField("timestamp"))
	})
}

func TestExportCycleFormat(t *testing.T) {
	m := newExportModel()
	require.Equal(t, models.FormatCSV, m.options.Format)

	want := []models.ExportFormat{models.FormatXLSX, models.FormatJSON, models.FormatPDF, models.FormatCSV}
	for _, f := range want {
		m = m.cycleFormat()
		assert.Equal(t, f, m.options.Format)
	}
}

func TestExportCycleDateRange(t *testing.T) {
	m := newExportModel()
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	require.Nil(t, m.options.DateFrom)
	assert.Equal(t, "all time", m.rangeLabel())

	for _, days := range []int{7, 30, 90} {
		m = m.cycleDateRange(now)
		require.NotNil(t, m.options.DateFrom)
		require.NotNil(t, m.options.DateTo)
		assert.Equal(t, now.AddDate(0, 0, -days), *m.options.DateFrom)
		assert.Equal(t, now, *m.options.DateTo)
	}

	// wraps back to no filter
	m = m.cycleDateRange(now)
	assert.Nil(t, m.options.DateFrom)
	assert.Nil(t, m.options.DateTo)
}

func TestExportBuildPreset(t *testing.T) {
	m := newExportModel()
	m.options.OnlyOverdue = true

	preset := m.buildPreset("weekly-review")

	assert.Equal(t, "weekly-review", preset.Name)
	assert.Equal(t, "weekly-review", preset.Options.Preset)
	assert.True(t, preset.Options.OnlyOverdue)
	assert.Equal(t, m.options.Fields, preset.Options.Fields)

	// the snapshot is detached from the live configuration
	m = m.toggleField("name")
	assert.Equal(t, "name", preset.Options.Fields[0])
}

func TestExportApplyPresetRestoresDateRange(t *testing.T) {
	m := newExportModel()
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	m = m.cycleDateRange(now) // 7 days
	m = m.cycleDateRange(now) // 30 days

	saved := m.buildPreset("monthly")

	fresh := newExportModel().applyPreset(saved)
	assert.Equal(t, "last 30 days", fresh.rangeLabel())
	require.NotNil(t, fresh.options.DateFrom)
	assert.Equal(t, now.AddDate(0, 0, -30), *fresh.options.DateFrom)
}
