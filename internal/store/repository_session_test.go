// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/cpm-tools/vault-console/internal/logger"
)

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &sessionRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSaveSession_UpsertsSingleRow(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	ctx := context.Background()
	saved := time.Now()

	mock.ExpectExec("INSERT INTO session").
		WithArgs(1, "operator", "jwt-token", saved).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveSession(ctx, Session{Username: "operator", Token: "jwt-token", SavedAt: saved})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetSession_Found(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	ctx := context.Background()
	saved := time.Now()

	rows := sqlmock.NewRows([]string{"username", "token", "saved_at"}).
		AddRow("operator", "jwt-token", saved)

	mock.ExpectQuery("SELECT username, token, saved_at FROM session").
		WithArgs(1).
		WillReturnRows(rows)

	session, err := repo.GetSession(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Username != "operator" {
		t.Errorf("expected username operator, got %s", session.Username)
	}
	if session.Token != "jwt-token" {
		t.Errorf("expected token jwt-token, got %s", session.Token)
	}
}

func TestGetSession_NeverLoggedOn(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT username, token, saved_at FROM session").
		WithArgs(1).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetSession(ctx)
	if !errors.Is(err, ErrLocalSessionNotFound) {
		t.Fatalf("expected ErrLocalSessionNotFound, got %v", err)
	}
}

func TestClearSession(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM session").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ClearSession(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
