// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/cpm-tools/vault-console/internal/adapter"
	"github.com/cpm-tools/vault-console/internal/logger"
	"github.com/cpm-tools/vault-console/internal/store"
	"github.com/cpm-tools/vault-console/models"
)

type exportService struct {
	adapter      adapter.ServerAdapter
	storages     *store.ClientStorages
	downloadsDir string
	now          func() time.Time
}

func NewExportService(serverAdapter adapter.ServerAdapter, storages *store.ClientStorages, downloadsDir string) ExportService {
	return &exportService{
		adapter:      serverAdapter,
		storages:     storages,
		downloadsDir: downloadsDir,
		now:          time.Now,
	}
}

func (e *exportService) Export(ctx context.Context, opts models.ExportOptions) (models.ExportHistoryEntry, error) {
	log := logger.FromContext(ctx)

	result, err := e.adapter.ExportReport(ctx, opts)
	if err != nil {
		return models.ExportHistoryEntry{}, fmt.Errorf("export report: %w", mapAdapterError(err))
	}

	now := e.now()
	fileName := opts.FileName(now)

	if err := os.MkdirAll(e.downloadsDir, 0o755); err != nil {
		return models.ExportHistoryEntry{}, fmt.Errorf("create downloads dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(e.downloadsDir, fileName), result.Content, 0o644); err != nil {
		return models.ExportHistoryEntry{}, fmt.Errorf("write report file: %w", err)
	}

	entry := models.ExportHistoryEntry{
		ID:          uuid.NewString(),
		Preset:      opts.Preset,
		Format:      opts.Format,
		FileName:    fileName,
		RecordCount: result.RecordCount,
		ExportedAt:  now,
	}

	if err := e.storages.Exports.AppendHistory(ctx, entry); err != nil {
		log.Warn().Err(err).Str("file_name", fileName).Msg("failed to record export history entry")
	}

	return entry, nil
}

func (e *exportService) Presets(ctx context.Context) ([]models.ExportPreset, error) {
	presets := models.BuiltinPresets()

	saved, err := e.storages.Exports.GetPresets(ctx)
	if err != nil {
		return nil, fmt.Errorf("load saved presets: %w", err)
	}

	return append(presets, saved...), nil
}

func (e *exportService) SavePreset(ctx context.Context, preset models.ExportPreset) error {
	if err := e.storages.Exports.SavePreset(ctx, preset); err != nil {
		return fmt.Errorf("save preset: %w", err)
	}
	return nil
}

func (e *exportService) History(ctx context.Context) ([]models.ExportHistoryEntry, error) {
	entries, err := e.storages.Exports.GetHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("load export history: %w", err)
	}
	return entries, nil
}
