// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/cpm-tools/vault-console/internal/service"
	"github.com/cpm-tools/vault-console/models"
)

type logonDoneMsg struct {
	username string
	err      error
}

type viewLoadedMsg struct {
	view service.AccountView
	err  error
}

// refreshedMsg carries a background poller result. Unlike viewLoadedMsg it
// must never steal focus or reset the cursor.
type refreshedMsg struct {
	result service.RefreshResult
}

// actionDoneMsg reports the outcome of a per-account action (rotate,
// validate, delete). The refreshed view ships in the same message so the
// table updates atomically with the busy flag clearing.
type actionDoneMsg struct {
	accountID string
	action    string
	resp      models.ActionResponse
	view      service.AccountView
	err       error
}

type accountCreatedMsg struct {
	view service.AccountView
	err  error
}

type credentialLoadedMsg struct {
	credential models.Credential
	err        error
}

type historyLoadedMsg struct {
	validations []models.ValidationHistoryEntry
	audits      []models.AuditLog
	err         error
}

type presetsLoadedMsg struct {
	presets []models.ExportPreset
	history []models.ExportHistoryEntry
	err     error
}

type presetSavedMsg struct {
	preset models.ExportPreset
	err    error
}

type exportDoneMsg struct {
	entry models.ExportHistoryEntry
	err   error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
