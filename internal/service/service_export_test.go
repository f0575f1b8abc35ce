// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cpm-tools/vault-console/internal/mock"
	"github.com/cpm-tools/vault-console/internal/store"
	"github.com/cpm-tools/vault-console/models"
)

func newTestExportSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*exportService,
	*mock.MockServerAdapter,
	*mock.MockExportRepository,
	string,
) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockExports := mock.NewMockExportRepository(ctrl)

	storages := &store.ClientStorages{Exports: mockExports}
	downloads := t.TempDir()

	svc := NewExportService(mockAdapter, storages, downloads).(*exportService)
	return svc, mockAdapter, mockExports, downloads
}

// ── Export ───────────────────────────────────────────────────────────────────

func TestExportService_Export_WritesFileAndRecordsHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockExports, downloads := newTestExportSvc(t, ctrl)
	ctx := context.Background()

	exportedAt := time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return exportedAt }

	opts := models.ExportOptions{Preset: "critical-failures", Format: models.FormatXLSX}

	mockAdapter.EXPECT().ExportReport(ctx, opts).
		Return(models.ExportResult{Content: []byte("xlsx-bytes"), RecordCount: 7}, nil)
	mockExports.EXPECT().AppendHistory(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, entry models.ExportHistoryEntry) error {
			assert.NotEmpty(t, entry.ID)
			assert.Equal(t, "critical-failures", entry.Preset)
			assert.Equal(t, 7, entry.RecordCount)
			return nil
		},
	)

	entry, err := svc.Export(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, "critical-failures-report-2026-08-25.xlsx", entry.FileName)

	written, err := os.ReadFile(filepath.Join(downloads, entry.FileName))
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx-bytes"), written)
}

func TestExportService_Export_ZeroRecordsStillProducesFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockExports, downloads := newTestExportSvc(t, ctrl)
	ctx := context.Background()

	svc.now = func() time.Time { return time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC) }

	opts := models.ExportOptions{Format: models.FormatCSV}

	mockAdapter.EXPECT().ExportReport(ctx, opts).
		Return(models.ExportResult{Content: []byte("name,hostname\n"), RecordCount: 0}, nil)
	mockExports.EXPECT().AppendHistory(ctx, gomock.Any()).Return(nil)

	entry, err := svc.Export(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, 0, entry.RecordCount)
	// empty preset falls back to the generic file name
	assert.Equal(t, "accounts-report-2026-08-25.csv", entry.FileName)

	_, err = os.Stat(filepath.Join(downloads, entry.FileName))
	require.NoError(t, err)
}

// ── Presets ──────────────────────────────────────────────────────────────────

func TestExportService_Presets_BuiltinsFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockExports, _ := newTestExportSvc(t, ctrl)
	ctx := context.Background()

	saved := []models.ExportPreset{{Name: "weekly-linux"}}
	mockExports.EXPECT().GetPresets(ctx).Return(saved, nil)

	presets, err := svc.Presets(ctx)
	require.NoError(t, err)

	builtin := models.BuiltinPresets()
	require.Len(t, presets, len(builtin)+1)
	assert.Equal(t, builtin[0].Name, presets[0].Name)
	assert.Equal(t, "weekly-linux", presets[len(presets)-1].Name)
}
