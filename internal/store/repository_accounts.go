// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/cpm-tools/vault-console/internal/logger"
	"github.com/cpm-tools/vault-console/models"
)

type accountCacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewAccountCacheRepository(db *DB, logger *logger.Logger) AccountCacheRepository {
	return &accountCacheRepository{
		DB:     db,
		logger: logger,
	}
}

var accountColumns = []string{
	"id", "owner", "name", "system_type", "hostname", "port",
	"connection_method", "platform_id", "account_type", "safe", "username",
	"rotation_policy_id", "rotation_status", "validation_status",
	"created_at", "updated_at",
}

func (a *accountCacheRepository) ReplaceAccounts(ctx context.Context, accounts []models.Account) error {
	log := logger.FromContext(ctx)

	tx, err := a.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "accountCacheRepository.ReplaceAccounts").
			Msg("failed to begin snapshot transaction")
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM accounts;`); err != nil {
		log.Err(err).
			Str("func", "accountCacheRepository.ReplaceAccounts").
			Msg("failed to clear previous snapshot")
		return fmt.Errorf("failed to clear previous snapshot: %w", err)
	}

	for _, account := range accounts {
		query, args, buildErr := sq.Insert("accounts").
			Columns(accountColumns...).
			Values(
				account.ID,
				account.Owner,
				account.Name,
				account.SystemType,
				account.Hostname,
				account.Port,
				account.ConnectionMethod,
				account.PlatformID,
				account.AccountType,
				account.Safe,
				account.Username,
				account.RotationPolicyID,
				account.RotationStatus,
				account.ValidationStatus,
				account.CreatedAt,
				account.UpdatedAt,
			).
			ToSql()
		if buildErr != nil {
			log.Err(buildErr).
				Str("func", "accountCacheRepository.ReplaceAccounts").
				Str("account_id", account.ID).
				Msg("failed to build insert query")
			return errors.Join(ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "accountCacheRepository.ReplaceAccounts").
				Str("account_id", account.ID).
				Msg("failed to insert account into snapshot")
			return fmt.Errorf("failed to insert account (id=%s): %w", account.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "accountCacheRepository.ReplaceAccounts").
			Msg("failed to commit snapshot transaction")
		return fmt.Errorf("failed to commit snapshot transaction: %w", err)
	}

	return nil
}

func (a *accountCacheRepository) GetAccounts(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(accountColumns...).
		From("accounts").
		OrderBy("rowid").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "accountCacheRepository.GetAccounts").
			Msg("failed to build select query")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := a.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "accountCacheRepository.GetAccounts").
			Msg("failed to query cached accounts")
		return nil, fmt.Errorf("failed to query cached accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account

	for rows.Next() {
		var account models.Account

		scanErr := rows.Scan(
			&account.ID,
			&account.Owner,
			&account.Name,
			&account.SystemType,
			&account.Hostname,
			&account.Port,
			&account.ConnectionMethod,
			&account.PlatformID,
			&account.AccountType,
			&account.Safe,
			&account.Username,
			&account.RotationPolicyID,
			&account.RotationStatus,
			&account.ValidationStatus,
			&account.CreatedAt,
			&account.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "accountCacheRepository.GetAccounts").
				Msg("failed to scan account row")
			return nil, fmt.Errorf("failed to scan account row: %w", scanErr)
		}

		accounts = append(accounts, account)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "accountCacheRepository.GetAccounts").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating account rows: %w", rowsErr)
	}

	return accounts, nil
}

func (a *accountCacheRepository) SaveSecret(ctx context.Context, accountID, blob string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("secrets").
		Columns("account_id", "blob", "updated_at").
		Values(accountID, blob, time.Now()).
		Suffix("ON CONFLICT (account_id) DO UPDATE SET blob = excluded.blob, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "accountCacheRepository.SaveSecret").
			Str("account_id", accountID).
			Msg("failed to build upsert query")
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	if _, err = a.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "accountCacheRepository.SaveSecret").
			Str("account_id", accountID).
			Msg("failed to upsert sealed secret")
		return fmt.Errorf("failed to save sealed secret (account_id=%s): %w", accountID, err)
	}

	return nil
}

func (a *accountCacheRepository) GetSecret(ctx context.Context, accountID string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("blob").
		From("secrets").
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "accountCacheRepository.GetSecret").
			Str("account_id", accountID).
			Msg("failed to build select query")
		return "", errors.Join(ErrBuildingSQLQuery, err)
	}

	var blob string
	scanErr := a.DB.QueryRowContext(ctx, query, args...).Scan(&blob)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return "", ErrSecretNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "accountCacheRepository.GetSecret").
			Str("account_id", accountID).
			Msg("failed to scan sealed secret row")
		return "", fmt.Errorf("failed to scan sealed secret row: %w", scanErr)
	}

	return blob, nil
}

func (a *accountCacheRepository) DeleteSecret(ctx context.Context, accountID string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("secrets").
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "accountCacheRepository.DeleteSecret").
			Str("account_id", accountID).
			Msg("failed to build delete query")
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	if _, err = a.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "accountCacheRepository.DeleteSecret").
			Str("account_id", accountID).
			Msg("failed to delete sealed secret")
		return fmt.Errorf("failed to delete sealed secret (account_id=%s): %w", accountID, err)
	}

	return nil
}
