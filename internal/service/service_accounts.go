// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/cpm-tools/vault-console/internal/adapter"
	"github.com/cpm-tools/vault-console/internal/crypto"
	"github.com/cpm-tools/vault-console/internal/logger"
	"github.com/cpm-tools/vault-console/internal/store"
	"github.com/cpm-tools/vault-console/models"
)

type accountService struct {
	adapter    adapter.ServerAdapter
	storages   *store.ClientStorages
	keychain   crypto.KeyChainService
	passphrase string
}

func NewAccountService(serverAdapter adapter.ServerAdapter, storages *store.ClientStorages, keychain crypto.KeyChainService, cachePassphrase string) AccountService {
	return &accountService{
		adapter:    serverAdapter,
		storages:   storages,
		keychain:   keychain,
		passphrase: cachePassphrase,
	}
}

func (a *accountService) List(ctx context.Context) (AccountView, error) {
	log := logger.FromContext(ctx)

	accounts, err := a.adapter.ListAccounts(ctx)
	if err != nil {
		mapped := mapAdapterError(err)
		if errors.Is(mapped, ErrSessionExpired) {
			return AccountView{}, mapped
		}

		// API unreachable: serve the last snapshot instead of a blank screen.
		cached, cacheErr := a.storages.Accounts.GetAccounts(ctx)
		if cacheErr != nil {
			return AccountView{}, fmt.Errorf("list accounts: %w", err)
		}
		log.Warn().Err(err).Msg("accounts fetch failed, serving cached snapshot")
		return AccountView{
			Accounts:   cached,
			Statistics: deriveStatistics(cached),
			Offline:    true,
		}, nil
	}

	stats, err := a.adapter.GetStatistics(ctx)
	if err != nil {
		// Counters are nice to have; derive them locally rather than fail
		// the whole listing.
		log.Warn().Err(err).Msg("statistics fetch failed, deriving locally")
		stats = deriveStatistics(accounts)
	}

	if err := a.storages.Accounts.ReplaceAccounts(ctx, accounts); err != nil {
		log.Warn().Err(err).Msg("failed to overwrite local snapshot")
	}

	return AccountView{Accounts: accounts, Statistics: stats}, nil
}

func (a *accountService) Filter(accounts []models.Account, query string) []models.Account {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return accounts
	}

	matched := make([]models.Account, 0, len(accounts))
	for _, account := range accounts {
		haystack := strings.ToLower(strings.Join([]string{
			account.Name, account.Hostname, account.Username, account.Safe,
		}, "\x00"))
		if strings.Contains(haystack, query) {
			matched = append(matched, account)
		}
	}
	return matched
}

func (a *accountService) Create(ctx context.Context, req models.CreateAccountRequest) (AccountView, error) {
	if _, err := a.adapter.CreateAccount(ctx, req); err != nil {
		return AccountView{}, fmt.Errorf("create account: %w", mapAdapterError(err))
	}

	return a.List(ctx)
}

func (a *accountService) Delete(ctx context.Context, id string) (AccountView, error) {
	if err := a.adapter.DeleteAccount(ctx, id); err != nil {
		return AccountView{}, fmt.Errorf("delete account: %w", mapAdapterError(err))
	}

	if err := a.storages.Accounts.DeleteSecret(ctx, id); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("account_id", id).Msg("failed to drop cached secret")
	}

	return a.List(ctx)
}

func (a *accountService) Rotate(ctx context.Context, id string) (models.ActionResponse, AccountView, error) {
	resp, err := a.adapter.RotatePassword(ctx, id)
	if err != nil {
		return models.ActionResponse{}, AccountView{}, fmt.Errorf("rotate password: %w", mapAdapterError(err))
	}

	// The stored secret changed on the server; the sealed copy is stale.
	if resp.Success {
		if err := a.storages.Accounts.DeleteSecret(ctx, id); err != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("account_id", id).Msg("failed to drop stale cached secret")
		}
	}

	view, err := a.List(ctx)
	return resp, view, err
}

func (a *accountService) Validate(ctx context.Context, id string) (models.ActionResponse, AccountView, error) {
	resp, err := a.adapter.ValidateCredential(ctx, id)
	if err != nil {
		return models.ActionResponse{}, AccountView{}, fmt.Errorf("validate credential: %w", mapAdapterError(err))
	}

	view, err := a.List(ctx)
	return resp, view, err
}

func (a *accountService) GetCredential(ctx context.Context, id string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	credential, err := a.adapter.GetCredential(ctx, id)
	if err != nil {
		mapped := mapAdapterError(err)
		if errors.Is(mapped, ErrSessionExpired) || errors.Is(mapped, ErrAccountNotFound) {
			return models.Credential{}, mapped
		}

		return a.cachedCredential(ctx, id, err)
	}

	// No passphrase means no key material worth the name; in that mode
	// secrets are never written to the local cache.
	if credential.Password != "" && a.passphrase != "" {
		blob, sealErr := a.sealSecret(credential.Password)
		if sealErr != nil {
			log.Warn().Err(sealErr).Str("account_id", id).Msg("failed to seal revealed secret")
		} else if saveErr := a.storages.Accounts.SaveSecret(ctx, id, blob); saveErr != nil {
			log.Warn().Err(saveErr).Str("account_id", id).Msg("failed to cache sealed secret")
		}
	}

	return credential, nil
}

// cachedCredential reconstructs a detail view from the local snapshot when
// the API is unreachable.
func (a *accountService) cachedCredential(ctx context.Context, id string, fetchErr error) (models.Credential, error) {
	accounts, err := a.storages.Accounts.GetAccounts(ctx)
	if err != nil {
		return models.Credential{}, fmt.Errorf("get credential: %w", fetchErr)
	}

	for _, account := range accounts {
		if account.ID != id {
			continue
		}

		credential := models.Credential{Account: account}
		if a.passphrase != "" {
			blob, secretErr := a.storages.Accounts.GetSecret(ctx, id)
			if secretErr == nil {
				if password, openErr := a.openSecret(blob); openErr == nil {
					credential.Password = password
				}
			}
		}
		return credential, nil
	}

	return models.Credential{}, fmt.Errorf("get credential: %w", fetchErr)
}

// sealSecret encrypts a revealed password for at-rest caching. The blob
// carries its own KDF salt so it can be opened in a later session:
// base64(salt) ":" base64(nonce ‖ ciphertext).
func (a *accountService) sealSecret(password string) (string, error) {
	salt, err := a.keychain.GenerateSalt()
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := a.keychain.DeriveKey(a.passphrase, salt)
	sealed, err := a.keychain.EncryptSecret(password, key)
	if err != nil {
		return "", fmt.Errorf("seal secret: %w", err)
	}

	return base64.StdEncoding.EncodeToString(salt) + ":" + sealed, nil
}

func (a *accountService) openSecret(blob string) (string, error) {
	saltB64, sealed, found := strings.Cut(blob, ":")
	if !found {
		return "", ErrSecretUnavailable
	}

	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return "", fmt.Errorf("decode salt: %w", err)
	}

	key := a.keychain.DeriveKey(a.passphrase, salt)
	password, err := a.keychain.DecryptSecret(sealed, key)
	if err != nil {
		return "", fmt.Errorf("open secret: %w", err)
	}

	return password, nil
}

// deriveStatistics recomputes the dashboard counters from a collection when
// the server-side aggregate is unavailable.
func deriveStatistics(accounts []models.Account) models.AccountStatistics {
	stats := models.AccountStatistics{Total: len(accounts)}

	for _, account := range accounts {
		switch account.RotationStatus {
		case models.RotationDueSoon, models.RotationOverdue:
			stats.RequiringRotation++
		}

		switch account.ValidationStatus {
		case models.ValidationValid:
			stats.Valid++
			stats.Active++
		case models.ValidationInvalid:
			stats.Invalid++
		case models.ValidationPending:
			stats.Pending++
		default:
			stats.Untested++
		}
	}

	return stats
}
