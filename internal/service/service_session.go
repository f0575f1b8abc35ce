// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cpm-tools/vault-console/internal/adapter"
	"github.com/cpm-tools/vault-console/internal/logger"
	"github.com/cpm-tools/vault-console/internal/store"
	"github.com/cpm-tools/vault-console/internal/utils"
	"github.com/cpm-tools/vault-console/models"
)

type sessionService struct {
	adapter  adapter.ServerAdapter
	storages *store.ClientStorages
	now      func() time.Time
}

func NewSessionService(serverAdapter adapter.ServerAdapter, storages *store.ClientStorages) SessionService {
	return &sessionService{
		adapter:  serverAdapter,
		storages: storages,
		now:      time.Now,
	}
}

func (s *sessionService) Logon(ctx context.Context, username, password string) error {
	token, err := s.adapter.Logon(ctx, models.LogonRequest{Username: username, Password: password})
	if err != nil {
		return fmt.Errorf("logon: %w", mapAdapterError(err))
	}

	session := store.Session{Username: username, Token: token, SavedAt: s.now()}
	if err := s.storages.Session.SaveSession(ctx, session); err != nil {
		// The operator is logged on for this run either way.
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to persist session")
	}

	return nil
}

func (s *sessionService) Restore(ctx context.Context) (string, error) {
	session, err := s.storages.Session.GetSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("load persisted session: %w", err)
	}

	if utils.TokenExpired(session.Token, s.now()) {
		if clearErr := s.storages.Session.ClearSession(ctx); clearErr != nil {
			logger.FromContext(ctx).Warn().Err(clearErr).Msg("failed to clear expired session")
		}
		return "", ErrSessionExpired
	}

	s.adapter.SetToken(session.Token)
	return session.Username, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	s.adapter.SetToken("")

	if err := s.storages.Session.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear persisted session: %w", err)
	}
	return nil
}
