// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/cpm-tools/vault-console/internal/logger"
	"github.com/cpm-tools/vault-console/models"
)

// historyLimit bounds the retained export history.
const historyLimit = 10

type exportRepository struct {
	*DB
	logger *logger.Logger
}

func NewExportRepository(db *DB, logger *logger.Logger) ExportRepository {
	return &exportRepository{
		DB:     db,
		logger: logger,
	}
}

func (e *exportRepository) AppendHistory(ctx context.Context, entry models.ExportHistoryEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("export_history").
		Columns("id", "preset", "format", "file_name", "record_count", "exported_at").
		Values(entry.ID, entry.Preset, entry.Format, entry.FileName, entry.RecordCount, entry.ExportedAt).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "exportRepository.AppendHistory").
			Msg("failed to build insert query")
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	if _, err = e.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "exportRepository.AppendHistory").
			Str("file_name", entry.FileName).
			Msg("failed to insert export history entry")
		return fmt.Errorf("failed to insert export history entry: %w", err)
	}

	trim := fmt.Sprintf(`DELETE FROM export_history
		WHERE id NOT IN (
			SELECT id FROM export_history ORDER BY exported_at DESC LIMIT %d
		);`, historyLimit)
	if _, err = e.DB.ExecContext(ctx, trim); err != nil {
		log.Err(err).
			Str("func", "exportRepository.AppendHistory").
			Msg("failed to trim export history")
		return fmt.Errorf("failed to trim export history: %w", err)
	}

	return nil
}

func (e *exportRepository) GetHistory(ctx context.Context) ([]models.ExportHistoryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("id", "preset", "format", "file_name", "record_count", "exported_at").
		From("export_history").
		OrderBy("exported_at DESC").
		Limit(historyLimit).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "exportRepository.GetHistory").
			Msg("failed to build select query")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := e.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "exportRepository.GetHistory").
			Msg("failed to query export history")
		return nil, fmt.Errorf("failed to query export history: %w", err)
	}
	defer rows.Close()

	var entries []models.ExportHistoryEntry

	for rows.Next() {
		var entry models.ExportHistoryEntry

		scanErr := rows.Scan(
			&entry.ID,
			&entry.Preset,
			&entry.Format,
			&entry.FileName,
			&entry.RecordCount,
			&entry.ExportedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "exportRepository.GetHistory").
				Msg("failed to scan export history row")
			return nil, fmt.Errorf("failed to scan export history row: %w", scanErr)
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "exportRepository.GetHistory").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating export history rows: %w", rowsErr)
	}

	return entries, nil
}

func (e *exportRepository) SavePreset(ctx context.Context, preset models.ExportPreset) error {
	log := logger.FromContext(ctx)

	options, err := json.Marshal(preset.Options)
	if err != nil {
		log.Err(err).
			Str("func", "exportRepository.SavePreset").
			Str("preset", preset.Name).
			Msg("failed to marshal preset options")
		return fmt.Errorf("failed to marshal preset options: %w", err)
	}

	query, args, err := sq.Insert("export_presets").
		Columns("name", "options").
		Values(preset.Name, string(options)).
		Suffix("ON CONFLICT (name) DO UPDATE SET options = excluded.options").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "exportRepository.SavePreset").
			Msg("failed to build upsert query")
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	if _, err = e.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "exportRepository.SavePreset").
			Str("preset", preset.Name).
			Msg("failed to upsert export preset")
		return fmt.Errorf("failed to save export preset (name=%s): %w", preset.Name, err)
	}

	return nil
}

func (e *exportRepository) GetPresets(ctx context.Context) ([]models.ExportPreset, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("name", "options").
		From("export_presets").
		OrderBy("name").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "exportRepository.GetPresets").
			Msg("failed to build select query")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := e.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "exportRepository.GetPresets").
			Msg("failed to query export presets")
		return nil, fmt.Errorf("failed to query export presets: %w", err)
	}
	defer rows.Close()

	var presets []models.ExportPreset

	for rows.Next() {
		var (
			preset  models.ExportPreset
			options string
		)

		if scanErr := rows.Scan(&preset.Name, &options); scanErr != nil {
			log.Err(scanErr).
				Str("func", "exportRepository.GetPresets").
				Msg("failed to scan export preset row")
			return nil, fmt.Errorf("failed to scan export preset row: %w", scanErr)
		}

		if unmarshalErr := json.Unmarshal([]byte(options), &preset.Options); unmarshalErr != nil {
			log.Err(unmarshalErr).
				Str("func", "exportRepository.GetPresets").
				Str("preset", preset.Name).
				Msg("failed to unmarshal preset options")
			return nil, fmt.Errorf("failed to unmarshal preset options (name=%s): %w", preset.Name, unmarshalErr)
		}

		presets = append(presets, preset)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "exportRepository.GetPresets").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating export preset rows: %w", rowsErr)
	}

	return presets, nil
}
