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
	"github.com/cpm-tools/vault-console/models"
)

func newTestAccountRepo(t *testing.T) (*accountCacheRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &accountCacheRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestReplaceAccounts_ClearsThenInserts(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()
	accounts := []models.Account{
		{ID: "acc-1", Name: "prod-db", SystemType: models.SystemPostgreSQL, Hostname: "db01", Username: "svc_pg"},
		{ID: "acc-2", Name: "edge-fw", SystemType: models.SystemCiscoIOS, Hostname: "fw01", Username: "admin"},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM accounts").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO accounts").
		WithArgs(
			"acc-1", "", "prod-db", "postgresql", "db01", 0,
			"", "", "", "", "svc_pg", "", "", "", nil, nil,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO accounts").
		WithArgs(
			"acc-2", "", "edge-fw", "cisco_ios", "fw01", 0,
			"", "", "", "", "admin", "", "", "", nil, nil,
		).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	if err := repo.ReplaceAccounts(ctx, accounts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestReplaceAccounts_RollsBackOnInsertError(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM accounts").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO accounts").
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err := repo.ReplaceAccounts(ctx, []models.Account{{ID: "acc-1"}})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetAccounts_ScansSnapshotInOrder(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(accountColumns).
		AddRow("acc-1", "alice", "prod-db", "postgresql", "db01", 5432,
			"psql", "plat-1", "service", "Default", "svc_pg",
			"pol-90d", "current", "valid", now, now).
		AddRow("acc-2", "bob", "edge-fw", "cisco_ios", "fw01", 22,
			"ssh", "plat-2", "local", "Network", "admin",
			"no_policy", "no_policy", "untested", now, now)

	mock.ExpectQuery("SELECT (.+) FROM accounts ORDER BY rowid").
		WillReturnRows(rows)

	accounts, err := repo.GetAccounts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[0].ID != "acc-1" || accounts[1].ID != "acc-2" {
		t.Errorf("snapshot order not preserved: got %s, %s", accounts[0].ID, accounts[1].ID)
	}
	if accounts[0].RotationStatus != models.RotationCurrent {
		t.Errorf("expected rotation status current, got %s", accounts[0].RotationStatus)
	}
	if accounts[1].ValidationStatus != models.ValidationUntested {
		t.Errorf("expected validation status untested, got %s", accounts[1].ValidationStatus)
	}
}

func TestGetSecret_NotCached(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT blob FROM secrets").
		WithArgs("acc-404").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetSecret(ctx, "acc-404")
	if !errors.Is(err, ErrSecretNotFound) {
		t.Fatalf("expected ErrSecretNotFound, got %v", err)
	}
}

func TestSaveSecret_Upserts(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO secrets").
		WithArgs("acc-1", "sealed-blob", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.SaveSecret(ctx, "acc-1", "sealed-blob"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteSecret_MissingRowIsNotAnError(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM secrets").
		WithArgs("acc-404").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteSecret(ctx, "acc-404"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
