// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/cpm-tools/vault-console/internal/logger"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sessionRepository) SaveSession(ctx context.Context, session Session) error {
	log := logger.FromContext(ctx)

	// single-row table, id is fixed to 1 by a CHECK constraint
	query, args, err := sq.Insert("session").
		Columns("id", "username", "token", "saved_at").
		Values(1, session.Username, session.Token, session.SavedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET username = excluded.username, token = excluded.token, saved_at = excluded.saved_at").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Msg("failed to build upsert query")
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Str("username", session.Username).
			Msg("failed to persist session")
		return fmt.Errorf("failed to persist session: %w", err)
	}

	return nil
}

func (s *sessionRepository) GetSession(ctx context.Context) (Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("username", "token", "saved_at").
		From("session").
		Where(sq.Eq{"id": 1}).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.GetSession").
			Msg("failed to build select query")
		return Session{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	var session Session
	scanErr := s.DB.QueryRowContext(ctx, query, args...).
		Scan(&session.Username, &session.Token, &session.SavedAt)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return Session{}, ErrLocalSessionNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "sessionRepository.GetSession").
			Msg("failed to scan session row")
		return Session{}, fmt.Errorf("failed to scan session row: %w", scanErr)
	}

	return session, nil
}

func (s *sessionRepository) ClearSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, `DELETE FROM session;`); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.ClearSession").
			Msg("failed to clear session")
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}
