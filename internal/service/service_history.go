// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/cpm-tools/vault-console/internal/adapter"
	"github.com/cpm-tools/vault-console/models"
)

type historyService struct {
	adapter adapter.ServerAdapter
}

func NewHistoryService(serverAdapter adapter.ServerAdapter) HistoryService {
	return &historyService{adapter: serverAdapter}
}

func (h *historyService) ValidationHistory(ctx context.Context, accountID string) ([]models.ValidationHistoryEntry, error) {
	entries, err := h.adapter.GetValidationHistory(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("fetch validation history: %w", mapAdapterError(err))
	}
	return entries, nil
}

func (h *historyService) AuditLogs(ctx context.Context, accountID string) ([]models.AuditLog, error) {
	logs, err := h.adapter.GetAuditLogs(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("fetch audit logs: %w", mapAdapterError(err))
	}
	return logs, nil
}
