// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cpm-tools/vault-console/internal/adapter"
	"github.com/cpm-tools/vault-console/internal/mock"
	"github.com/cpm-tools/vault-console/internal/store"
	"github.com/cpm-tools/vault-console/models"
)

// newTestAccountSvc builds an accountService wired to mocks for every
// collaborator.
func newTestAccountSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*accountService,
	*mock.MockServerAdapter,
	*mock.MockAccountCacheRepository,
	*mock.MockKeyChainService,
) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockCache := mock.NewMockAccountCacheRepository(ctrl)
	mockKeyChain := mock.NewMockKeyChainService(ctrl)

	storages := &store.ClientStorages{Accounts: mockCache}

	svc := NewAccountService(mockAdapter, storages, mockKeyChain, "cache-pass").(*accountService)
	return svc, mockAdapter, mockCache, mockKeyChain
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestAccountService_List_OverwritesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	accounts := []models.Account{
		{ID: "acc-1", Name: "prod-db", ValidationStatus: models.ValidationValid},
		{ID: "acc-2", Name: "edge-fw", ValidationStatus: models.ValidationInvalid},
	}
	stats := models.AccountStatistics{Total: 2, Valid: 1, Invalid: 1}

	mockAdapter.EXPECT().ListAccounts(ctx).Return(accounts, nil)
	mockAdapter.EXPECT().GetStatistics(ctx).Return(stats, nil)
	mockCache.EXPECT().ReplaceAccounts(ctx, accounts).Return(nil)

	view, err := svc.List(ctx)
	require.NoError(t, err)
	assert.False(t, view.Offline)
	assert.Equal(t, accounts, view.Accounts)
	assert.Equal(t, stats, view.Statistics)
}

func TestAccountService_List_FallsBackToCacheWhenUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	cached := []models.Account{
		{ID: "acc-1", Name: "prod-db", ValidationStatus: models.ValidationValid, RotationStatus: models.RotationOverdue},
	}

	mockAdapter.EXPECT().ListAccounts(ctx).Return(nil, errors.New("connection refused"))
	mockCache.EXPECT().GetAccounts(ctx).Return(cached, nil)

	view, err := svc.List(ctx)
	require.NoError(t, err)
	assert.True(t, view.Offline)
	assert.Equal(t, cached, view.Accounts)
	// counters are derived locally in offline mode
	assert.Equal(t, 1, view.Statistics.Total)
	assert.Equal(t, 1, view.Statistics.Valid)
	assert.Equal(t, 1, view.Statistics.RequiringRotation)
}

func TestAccountService_List_SessionExpiredIsNeverMasked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListAccounts(ctx).
		Return(nil, adapter.ErrSessionExpired)

	_, err := svc.List(ctx)
	require.ErrorIs(t, err, ErrSessionExpired)
}

func TestAccountService_List_DerivesStatisticsWhenCounterFetchFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	accounts := []models.Account{
		{ID: "acc-1", ValidationStatus: models.ValidationPending},
		{ID: "acc-2", ValidationStatus: "exotic_future_status"},
	}

	mockAdapter.EXPECT().ListAccounts(ctx).Return(accounts, nil)
	mockAdapter.EXPECT().GetStatistics(ctx).Return(models.AccountStatistics{}, errors.New("boom"))
	mockCache.EXPECT().ReplaceAccounts(ctx, accounts).Return(nil)

	view, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Statistics.Total)
	assert.Equal(t, 1, view.Statistics.Pending)
	// unknown statuses are counted, not dropped
	assert.Equal(t, 1, view.Statistics.Untested)
}

// ── Filter ───────────────────────────────────────────────────────────────────

func TestAccountService_Filter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestAccountSvc(t, ctrl)

	accounts := []models.Account{
		{ID: "acc-1", Name: "prod-db", Hostname: "db01.corp", Username: "svc_pg", Safe: "Default"},
		{ID: "acc-2", Name: "edge-fw", Hostname: "fw01.corp", Username: "admin", Safe: "Network"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query returns all", query: "", want: []string{"acc-1", "acc-2"}},
		{name: "matches name", query: "prod", want: []string{"acc-1"}},
		{name: "matches hostname case-insensitively", query: "FW01", want: []string{"acc-2"}},
		{name: "matches safe", query: "network", want: []string{"acc-2"}},
		{name: "no match", query: "nonexistent", want: nil},
		{name: "whitespace only returns all", query: "   ", want: []string{"acc-1", "acc-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Filter(accounts, tt.query)
			ids := make([]string, 0, len(got))
			for _, a := range got {
				ids = append(ids, a.ID)
			}
			if tt.want == nil {
				assert.Empty(t, ids)
				return
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

// ── Actions ──────────────────────────────────────────────────────────────────

func TestAccountService_Rotate_DropsStaleSecretAndRefetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().RotatePassword(ctx, "acc-1").
		Return(models.ActionResponse{Success: true, RotationStatus: models.RotationCurrent}, nil)
	mockCache.EXPECT().DeleteSecret(ctx, "acc-1").Return(nil)
	mockAdapter.EXPECT().ListAccounts(ctx).Return([]models.Account{{ID: "acc-1"}}, nil)
	mockAdapter.EXPECT().GetStatistics(ctx).Return(models.AccountStatistics{Total: 1}, nil)
	mockCache.EXPECT().ReplaceAccounts(ctx, gomock.Any()).Return(nil)

	resp, view, err := svc.Rotate(ctx, "acc-1")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Len(t, view.Accounts, 1)
}

func TestAccountService_Rotate_BusinessFailureKeepsSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().RotatePassword(ctx, "acc-1").
		Return(models.ActionResponse{Success: false, Message: "target system unreachable"}, nil)
	mockAdapter.EXPECT().ListAccounts(ctx).Return([]models.Account{{ID: "acc-1"}}, nil)
	mockAdapter.EXPECT().GetStatistics(ctx).Return(models.AccountStatistics{Total: 1}, nil)
	mockCache.EXPECT().ReplaceAccounts(ctx, gomock.Any()).Return(nil)

	resp, _, err := svc.Rotate(ctx, "acc-1")
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "target system unreachable", resp.Message)
}

func TestAccountService_Delete_MapsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteAccount(ctx, "acc-404").
		Return(adapter.ErrNotFound)

	_, err := svc.Delete(ctx, "acc-404")
	require.ErrorIs(t, err, ErrAccountNotFound)
}

// ── GetCredential ────────────────────────────────────────────────────────────

func TestAccountService_GetCredential_SealsRevealedSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache, mockKeyChain := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	credential := models.Credential{
		Account:  models.Account{ID: "acc-1", Name: "prod-db"},
		Password: "s3cr3t",
	}
	salt := []byte("0123456789abcdef")
	key := []byte("derived-cache-key-32-bytes-long!")

	gomock.InOrder(
		mockAdapter.EXPECT().GetCredential(ctx, "acc-1").Return(credential, nil),
		mockKeyChain.EXPECT().GenerateSalt().Return(salt, nil),
		mockKeyChain.EXPECT().DeriveKey("cache-pass", salt).Return(key),
		mockKeyChain.EXPECT().EncryptSecret("s3cr3t", key).Return("sealed-blob", nil),
		mockCache.EXPECT().SaveSecret(ctx, "acc-1", gomock.Any()).Return(nil),
	)

	got, err := svc.GetCredential(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", got.Password)
}

func TestAccountService_GetCredential_NoSecretNothingCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	// No reveal permission: the API omits the password and nothing is sealed.
	mockAdapter.EXPECT().GetCredential(ctx, "acc-1").
		Return(models.Credential{Account: models.Account{ID: "acc-1"}}, nil)

	got, err := svc.GetCredential(ctx, "acc-1")
	require.NoError(t, err)
	assert.Empty(t, got.Password)
}

func TestAccountService_GetCredential_EmptyPassphraseNeverCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockCache := mock.NewMockAccountCacheRepository(ctrl)
	mockKeyChain := mock.NewMockKeyChainService(ctrl)
	storages := &store.ClientStorages{Accounts: mockCache}

	svc := NewAccountService(mockAdapter, storages, mockKeyChain, "").(*accountService)
	ctx := context.Background()

	// No SaveSecret or keychain expectations: with an empty passphrase the
	// revealed secret must never be written to the local cache.
	mockAdapter.EXPECT().GetCredential(ctx, "acc-1").
		Return(models.Credential{Account: models.Account{ID: "acc-1"}, Password: "s3cr3t"}, nil)

	got, err := svc.GetCredential(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", got.Password)
}

func TestAccountService_GetCredential_EmptyPassphraseOfflineSkipsSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockCache := mock.NewMockAccountCacheRepository(ctrl)
	mockKeyChain := mock.NewMockKeyChainService(ctrl)
	storages := &store.ClientStorages{Accounts: mockCache}

	svc := NewAccountService(mockAdapter, storages, mockKeyChain, "").(*accountService)
	ctx := context.Background()

	// Offline fallback still serves the account metadata, but the sealed
	// blob is never even read without a passphrase to open it.
	mockAdapter.EXPECT().GetCredential(ctx, "acc-1").
		Return(models.Credential{}, errors.New("connection refused"))
	mockCache.EXPECT().GetAccounts(ctx).
		Return([]models.Account{{ID: "acc-1", Name: "prod-db"}}, nil)

	got, err := svc.GetCredential(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "prod-db", got.Name)
	assert.Empty(t, got.Password)
}

func TestAccountService_GetCredential_OfflineFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache, mockKeyChain := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	salt := []byte("0123456789abcdef")
	key := []byte("derived-cache-key-32-bytes-long!")
	blob := "MDEyMzQ1Njc4OWFiY2RlZg==:sealed-part"

	gomock.InOrder(
		mockAdapter.EXPECT().GetCredential(ctx, "acc-1").Return(models.Credential{}, errors.New("connection refused")),
		mockCache.EXPECT().GetAccounts(ctx).Return([]models.Account{{ID: "acc-1", Name: "prod-db"}}, nil),
		mockCache.EXPECT().GetSecret(ctx, "acc-1").Return(blob, nil),
		mockKeyChain.EXPECT().DeriveKey("cache-pass", salt).Return(key),
		mockKeyChain.EXPECT().DecryptSecret("sealed-part", key).Return("s3cr3t", nil),
	)

	got, err := svc.GetCredential(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "prod-db", got.Name)
	assert.Equal(t, "s3cr3t", got.Password)
}

func TestAccountService_GetCredential_NotFoundIsNotServedFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetCredential(ctx, "acc-404").
		Return(models.Credential{}, adapter.ErrNotFound)

	_, err := svc.GetCredential(ctx, "acc-404")
	require.ErrorIs(t, err, ErrAccountNotFound)
}
