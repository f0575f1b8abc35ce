// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cpm-tools/vault-console/internal/adapter"
	"github.com/cpm-tools/vault-console/internal/mock"
	"github.com/cpm-tools/vault-console/internal/store"
	"github.com/cpm-tools/vault-console/internal/utils"
	"github.com/cpm-tools/vault-console/models"
)

func newTestSessionSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*sessionService,
	*mock.MockServerAdapter,
	*mock.MockSessionRepository,
) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSessions := mock.NewMockSessionRepository(ctrl)

	storages := &store.ClientStorages{Session: mockSessions}

	svc := NewSessionService(mockAdapter, storages).(*sessionService)
	return svc, mockAdapter, mockSessions
}

// wrapUnauthorized mimics the adapter's 401 error shape: the sentinel
// wrapped with the server's response body.
func wrapUnauthorized(body string) error {
	return fmt.Errorf("%w: %s", adapter.ErrSessionExpired, body)
}

func testToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("vault-console-test", "operator", ttl, "test-sign-key")
	require.NoError(t, err)
	return token
}

// ── Logon ────────────────────────────────────────────────────────────────────

func TestSessionService_Logon_PersistsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Logon(ctx, models.LogonRequest{Username: "operator", Password: "pass"}).
		Return("issued-token", nil)
	mockSessions.EXPECT().SaveSession(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, session store.Session) error {
			assert.Equal(t, "operator", session.Username)
			assert.Equal(t, "issued-token", session.Token)
			assert.False(t, session.SavedAt.IsZero())
			return nil
		},
	)

	err := svc.Logon(ctx, "operator", "pass")
	require.NoError(t, err)
}

func TestSessionService_Logon_WrongCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Logon(ctx, gomock.Any()).
		Return("", wrapUnauthorized("invalid username/password"))

	err := svc.Logon(ctx, "operator", "wrong")
	require.ErrorIs(t, err, ErrWrongCredentials)
}

// ── Restore ──────────────────────────────────────────────────────────────────

func TestSessionService_Restore_ArmsAdapterWithStoredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	token := testToken(t, time.Hour)

	mockSessions.EXPECT().GetSession(ctx).
		Return(store.Session{Username: "operator", Token: token, SavedAt: time.Now()}, nil)
	mockAdapter.EXPECT().SetToken(token)

	username, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, "operator", username)
}

func TestSessionService_Restore_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().GetSession(ctx).
		Return(store.Session{}, store.ErrLocalSessionNotFound)

	_, err := svc.Restore(ctx)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestSessionService_Restore_ExpiredTokenIsCleared(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	token := testToken(t, time.Hour)
	// move the service clock past the token's expiry
	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	mockSessions.EXPECT().GetSession(ctx).
		Return(store.Session{Username: "operator", Token: token}, nil)
	mockSessions.EXPECT().ClearSession(ctx).Return(nil)

	_, err := svc.Restore(ctx)
	require.ErrorIs(t, err, ErrSessionExpired)
}

func TestSessionService_Restore_MalformedTokenCountsAsExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().GetSession(ctx).
		Return(store.Session{Username: "operator", Token: "not-a-jwt"}, nil)
	mockSessions.EXPECT().ClearSession(ctx).Return(nil)

	_, err := svc.Restore(ctx)
	require.ErrorIs(t, err, ErrSessionExpired)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestSessionService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SetToken("")
	mockSessions.EXPECT().ClearSession(ctx).Return(nil)

	err := svc.Logout(ctx)
	require.NoError(t, err)
}
