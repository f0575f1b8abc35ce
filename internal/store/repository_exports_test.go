// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/cpm-tools/vault-console/internal/logger"
	"github.com/cpm-tools/vault-console/models"
)

func newTestExportRepo(t *testing.T) (*exportRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &exportRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestAppendHistory_InsertsThenTrims(t *testing.T) {
	repo, mock, db := newTestExportRepo(t)
	defer db.Close()

	ctx := context.Background()
	entry := models.ExportHistoryEntry{
		ID:          "exp-1",
		Preset:      "critical-failures",
		Format:      models.FormatXLSX,
		FileName:    "critical-failures-report-2026-08-25.xlsx",
		RecordCount: 7,
		ExportedAt:  time.Now(),
	}

	mock.ExpectExec("INSERT INTO export_history").
		WithArgs(entry.ID, entry.Preset, entry.Format, entry.FileName, entry.RecordCount, entry.ExportedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("DELETE FROM export_history").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.AppendHistory(ctx, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetHistory_MostRecentFirst(t *testing.T) {
	repo, mock, db := newTestExportRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "preset", "format", "file_name", "record_count", "exported_at"}).
		AddRow("exp-2", "all-accounts", "csv", "all-accounts-report-2026-08-25.csv", 120, now).
		AddRow("exp-1", "audit-trail", "json", "audit-trail-report-2026-08-24.json", 48, now.Add(-24*time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM export_history ORDER BY exported_at DESC").
		WillReturnRows(rows)

	entries, err := repo.GetHistory(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "exp-2" {
		t.Errorf("expected most recent entry first, got %s", entries[0].ID)
	}
	if entries[1].Format != models.FormatJSON {
		t.Errorf("expected json format, got %s", entries[1].Format)
	}
}

func TestSavePreset_MarshalsOptions(t *testing.T) {
	repo, mock, db := newTestExportRepo(t)
	defer db.Close()

	ctx := context.Background()
	preset := models.ExportPreset{
		Name: "weekly-linux",
		Options: models.ExportOptions{
			Preset: "weekly-linux",
			Format: models.FormatCSV,
			Fields: []string{"name", "hostname", "rotation_status"},
		},
	}

	mock.ExpectExec("INSERT INTO export_presets").
		WithArgs(preset.Name, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.SavePreset(ctx, preset); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetPresets_UnmarshalsOptions(t *testing.T) {
	repo, mock, db := newTestExportRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"name", "options"}).
		AddRow("weekly-linux", `{"preset":"weekly-linux","format":"csv","fields":["name","hostname"],"only_failures":false,"only_overdue":false,"include_audit":false}`)

	mock.ExpectQuery("SELECT name, options FROM export_presets ORDER BY name").
		WillReturnRows(rows)

	presets, err := repo.GetPresets(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(presets) != 1 {
		t.Fatalf("expected 1 preset, got %d", len(presets))
	}
	if presets[0].Options.Format != models.FormatCSV {
		t.Errorf("expected csv format, got %s", presets[0].Options.Format)
	}
	if len(presets[0].Options.Fields) != 2 {
		t.Errorf("expected 2 fields, got %d", len(presets[0].Options.Fields))
	}
}
