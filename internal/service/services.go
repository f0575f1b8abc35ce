// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/cpm-tools/vault-console/internal/adapter"
	"github.com/cpm-tools/vault-console/internal/config"
	"github.com/cpm-tools/vault-console/internal/crypto"
	"github.com/cpm-tools/vault-console/internal/store"
)

// ClientServices bundles every business service the TUI needs.
type ClientServices struct {
	Accounts AccountService
	History  HistoryService
	Exports  ExportService
	Session  SessionService
	Refresh  RefreshJob
}

func NewClientServices(cfg *config.ClientConfig, storages *store.ClientStorages, serverAdapter adapter.ServerAdapter) *ClientServices {
	keychain := crypto.NewKeyChainService()
	accountsSvc := NewAccountService(serverAdapter, storages, keychain, cfg.App.CachePassphrase)

	return &ClientServices{
		Accounts: accountsSvc,
		History:  NewHistoryService(serverAdapter),
		Exports:  NewExportService(serverAdapter, storages, cfg.App.DownloadsDir),
		Session:  NewSessionService(serverAdapter, storages),
		Refresh:  NewRefreshJob(accountsSvc),
	}
}
