// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cpm-tools/vault-console/internal/service"
	"github.com/cpm-tools/vault-console/models"
)

var ErrUserQuit = errors.New("user quit")

// statusTTL is how long transient banners stay on screen.
const statusTTL = 3 * time.Second

type screen int

const (
	screenLogin screen = iota
	screenList
	screenDetail
	screenWizard
	screenHistory
	screenExport
)

type appModel struct {
	ctx             context.Context
	services        *service.ClientServices
	refreshInterval time.Duration

	currentScreen screen
	username      string

	login   loginModel
	list    listModel
	detail  detailModel
	wizard  wizardModel
	history historyModel
	export  exportModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string

	logout bool
	err    error
}

func newAppModel(ctx context.Context, services *service.ClientServices, refreshInterval time.Duration, restoredUser string) appModel {
	m := appModel{
		ctx:             ctx,
		services:        services,
		refreshInterval: refreshInterval,
		currentScreen:   screenLogin,
		login:           newLoginModel(),
		list:            newListModel(),
		wizard:          newWizardModel(),
		export:          newExportModel(),
	}

	if restoredUser != "" {
		m.username = restoredUser
		m.currentScreen = screenList
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.currentScreen == screenList {
		return m.enterMain()
	}
	return nil
}

// enterMain starts the background poller and loads the first view. Called
// after logon or a restored session.
func (m appModel) enterMain() tea.Cmd {
	m.services.Refresh.Start(m.ctx, m.refreshInterval)
	return tea.Batch(m.cmdLoadView(), m.cmdAwaitRefresh(), m.list.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				id := m.pendingDelete
				m.pendingDelete = ""
				m.list.busy[id] = actionDelete
				if m.currentScreen == screenDetail {
					m.currentScreen = screenList
				}
				return m, m.cmdDelete(id)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}

	case logonDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.username = msg.username
		m.currentScreen = screenList
		m.list.loading = true
		return m, m.enterMain()

	case viewLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			return m.handleFetchError(msg.err)
		}
		m = m.applyView(msg.view)
		return m, nil

	case refreshedMsg:
		if msg.result.Err != nil {
			if errors.Is(msg.result.Err, service.ErrSessionExpired) {
				return m.expireSession()
			}
			// transient poll failure, keep the current view and keep polling
			return m, m.cmdAwaitRefresh()
		}
		m = m.applyView(msg.result.View)
		return m, m.cmdAwaitRefresh()

	case actionDoneMsg:
		delete(m.list.busy, msg.accountID)
		if msg.err != nil {
			return m.handleFetchError(msg.err)
		}
		m = m.applyView(msg.view)
		m = m.setStatus(actionBanner(msg), msg.action == actionDelete || msg.resp.Success)
		return m, cmdClearStatus()

	case accountCreatedMsg:
		m.wizard.submitting = false
		if msg.err != nil {
			return m.handleFetchError(msg.err)
		}
		m.wizard = newWizardModel()
		m.currentScreen = screenList
		m = m.applyView(msg.view)
		m = m.setStatus("Account created", true)
		return m, cmdClearStatus()

	case credentialLoadedMsg:
		m.detail.loading = false
		if msg.err != nil {
			return m.handleFetchError(msg.err)
		}
		m.detail.credential = msg.credential
		return m, nil

	case historyLoadedMsg:
		m.history.loading = false
		if msg.err != nil {
			return m.handleFetchError(msg.err)
		}
		m.history.validations = msg.validations
		m.history.audits = msg.audits
		return m, nil

	case presetsLoadedMsg:
		m.export.loading = false
		if msg.err != nil {
			return m.handleFetchError(msg.err)
		}
		m.export.presets = msg.presets
		m.export.history = msg.history
		return m, nil

	case presetSavedMsg:
		if msg.err != nil {
			return m.handleFetchError(msg.err)
		}
		m.export.status = fmt.Sprintf("Preset %q saved", msg.preset.Name)
		m.export.statusOK = true
		return m, tea.Batch(m.cmdLoadPresets(), cmdClearStatus())

	case exportDoneMsg:
		m.export.exporting = false
		if msg.err != nil {
			return m.handleFetchError(msg.err)
		}
		m.export.status = fmt.Sprintf("Saved %s (%d records)", msg.entry.FileName, msg.entry.RecordCount)
		m.export.statusOK = true
		m.export.history = append([]models.ExportHistoryEntry{msg.entry}, m.export.history...)
		if len(m.export.history) > 10 {
			m.export.history = m.export.history[:10]
		}
		return m, cmdClearStatus()

	case copiedMsg:
		if m.currentScreen == screenDetail {
			m.detail.status = "Copied!"
		}
		m = m.setStatus("Copied!", true)
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.list.status = ""
		m.detail.status = ""
		m.export.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		m.export.spinner = m.list.spinner
		return m, cmd

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenWizard:
		return m.updateWizard(msg)
	case screenHistory:
		return m.updateHistory(msg)
	case screenExport:
		return m.updateExport(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenLogin:
		body = m.login.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenWizard:
		body = m.wizard.View()
	case screenHistory:
		body = m.history.View()
	case screenExport:
		body = m.export.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) setStatus(message string, ok bool) appModel {
	m.list.status = message
	m.list.statusOK = ok
	return m
}

// applyView swaps the fetched collection in, re-applying the local filter
// and preserving cursor and busy markers.
func (m appModel) applyView(view service.AccountView) appModel {
	filtered := m.services.Accounts.Filter(view.Accounts, m.list.filter.Value())
	m.list = m.list.setAccounts(view.Accounts, filtered)
	m.list.stats = view.Statistics
	m.list.offline = view.Offline
	return m
}

// handleFetchError routes a failed operation either to the session-expiry
// flow or to the error overlay.
func (m appModel) handleFetchError(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, service.ErrSessionExpired) {
		return m.expireSession()
	}
	m.showErrorf(err.Error())
	return m, nil
}

// expireSession stops polling and drops the operator back to the logon
// screen. All cached view state is kept so a re-logon is cheap.
func (m appModel) expireSession() (tea.Model, tea.Cmd) {
	m.services.Refresh.Stop()
	m.currentScreen = screenLogin
	m.login = newLoginModel()
	m.showErrorf("Session expired, please sign in again")
	return m, nil
}

// ── screen updates ───────────────────────────────────────────────────────────

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		// plain "q" stays typeable in the username field
		case keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.enter) && m.login.focus == 0:
			m.login = focusNextLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrevLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			username := strings.TrimSpace(m.login.inputs[0].Value())
			password := m.login.inputs[1].Value()
			if username == "" || password == "" {
				m.showErrorf("Username and password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogon(username, password)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.list.filtering {
		switch {
		case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.esc):
			if key.Matches(keyMsg, keys.esc) {
				m.list.filter.SetValue("")
			}
			m.list.filtering = false
			m.list.filter.Blur()
			m.list.filtered = m.services.Accounts.Filter(m.list.all, m.list.filter.Value())
			m.list.idx = 0
			return m, nil
		}
		var cmd tea.Cmd
		m.list.filter, cmd = m.list.filter.Update(msg)
		m.list.filtered = m.services.Accounts.Filter(m.list.all, m.list.filter.Value())
		m.list.idx = 0
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.filtered)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		account, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{loading: true}
		m.currentScreen = screenDetail
		return m, m.cmdLoadCredential(account.ID)
	case key.Matches(keyMsg, keys.newItem):
		m.wizard = newWizardModel()
		m.currentScreen = screenWizard
	case key.Matches(keyMsg, keys.filter):
		m.list.filtering = true
		m.list.filter.Focus()
	case key.Matches(keyMsg, keys.refresh):
		m.list.loading = true
		return m, m.cmdLoadView()
	case key.Matches(keyMsg, keys.rotate):
		return m.startAction(actionRotate)
	case key.Matches(keyMsg, keys.validate):
		return m.startAction(actionValidate)
	case key.Matches(keyMsg, keys.delete):
		account, ok := m.list.current()
		if !ok || m.list.isBusy(account.ID) {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = account.Name
		m.pendingDelete = account.ID
	case key.Matches(keyMsg, keys.history):
		account, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.history = historyModel{accountName: account.Name, loading: true}
		m.currentScreen = screenHistory
		return m, m.cmdLoadHistory(account.ID)
	case key.Matches(keyMsg, keys.export):
		m.export = newExportModel()
		m.currentScreen = screenExport
		return m, tea.Batch(m.cmdLoadPresets(), m.export.spinner.Tick)
	case key.Matches(keyMsg, keys.logout):
		m.services.Refresh.Stop()
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.quit):
		m.services.Refresh.Stop()
		return m, tea.Quit
	}

	return m, nil
}

// startAction flags the selected account busy and fires the action command.
// A second action on the same account is ignored until the first finishes;
// other accounts stay fully interactive.
func (m appModel) startAction(action string) (tea.Model, tea.Cmd) {
	account, ok := m.list.current()
	if !ok {
		return m, nil
	}
	if m.list.isBusy(account.ID) {
		return m, nil
	}

	m.list.busy[account.ID] = action
	switch action {
	case actionRotate:
		return m, m.cmdRotate(account.ID)
	case actionValidate:
		return m, m.cmdValidate(account.ID)
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	id := m.detail.credential.ID

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.reveal):
		if m.detail.credential.Password == "" {
			m.detail.status = "No reveal permission for this credential"
			return m, cmdClearStatus()
		}
		m.detail.revealed = !m.detail.revealed
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		if m.detail.credential.Password == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.credential.Password)
	case key.Matches(keyMsg, keys.copyUser):
		if m.detail.credential.Username == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.credential.Username)
	case key.Matches(keyMsg, keys.rotate):
		if id == "" || m.list.isBusy(id) {
			return m, nil
		}
		m.list.busy[id] = actionRotate
		m.currentScreen = screenList
		return m, m.cmdRotate(id)
	case key.Matches(keyMsg, keys.validate):
		if id == "" || m.list.isBusy(id) {
			return m, nil
		}
		m.list.busy[id] = actionValidate
		m.currentScreen = screenList
		return m, m.cmdValidate(id)
	case key.Matches(keyMsg, keys.history):
		m.history = historyModel{accountName: m.detail.credential.Name, loading: true}
		m.currentScreen = screenHistory
		return m, m.cmdLoadHistory(id)
	case key.Matches(keyMsg, keys.delete):
		if id == "" || m.list.isBusy(id) {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = m.detail.credential.Name
		m.pendingDelete = id
	}

	return m, nil
}

func (m appModel) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.wizard.step == stepSystemType {
				m.wizard = newWizardModel()
				m.currentScreen = screenList
				return m, nil
			}
			m.wizard = m.wizard.back()
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.wizard = m.wizard.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.wizard = m.wizard.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.up) && m.wizard.step == stepSystemType:
			if m.wizard.typeIdx > 0 {
				m.wizard.typeIdx--
			}
			return m, nil
		case key.Matches(keyMsg, keys.down) && m.wizard.step == stepSystemType:
			if m.wizard.typeIdx < len(models.SystemTypes())-1 {
				m.wizard.typeIdx++
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.wizard.step == stepReview {
				if m.wizard.submitting {
					return m, nil
				}
				if err := m.wizard.validateStep(m.ctx); err != nil {
					m.showErrorf(err.Error())
					return m, nil
				}
				m.wizard.submitting = true
				return m, m.cmdCreateAccount(m.wizard.payload())
			}
			next, err := m.wizard.next(m.ctx)
			if err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			m.wizard = next
			return m, nil
		}
	}

	inputs := m.wizard.stepInputs()
	if len(inputs) > 0 {
		var cmd tea.Cmd
		inputs[m.wizard.focus], cmd = inputs[m.wizard.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.tab):
		m.history.showAudit = !m.history.showAudit
	}
	return m, nil
}

func (m appModel) updateExport(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.export.naming {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.export.naming = false
			m.export.nameInput.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			name := strings.TrimSpace(m.export.nameInput.Value())
			if name == "" {
				m.showErrorf("Preset name is required")
				return m, nil
			}
			if err := m.export.validator.Validate(m.ctx, m.export.options); err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			m.export.naming = false
			m.export.nameInput.Blur()
			return m, m.cmdSavePreset(m.export.buildPreset(name))
		}
		var cmd tea.Cmd
		m.export.nameInput, cmd = m.export.nameInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
		m.export.focusFields = !m.export.focusFields
	case key.Matches(keyMsg, keys.up):
		if m.export.focusFields {
			if m.export.fieldIdx > 0 {
				m.export.fieldIdx--
			}
		} else if m.export.idx > 0 {
			m.export.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.export.focusFields {
			if m.export.fieldIdx < len(exportFieldCatalog)-1 {
				m.export.fieldIdx++
			}
		} else if m.export.idx < len(m.export.presets)-1 {
			m.export.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.export.focusFields {
			m.export = m.export.toggleField(exportFieldCatalog[m.export.fieldIdx])
			return m, nil
		}
		preset, ok := m.export.current()
		if !ok {
			return m, nil
		}
		m.export = m.export.applyPreset(preset)
	case key.Matches(keyMsg, keys.format):
		m.export = m.export.cycleFormat()
	case key.Matches(keyMsg, keys.failures):
		m.export.options.OnlyFailures = !m.export.options.OnlyFailures
	case key.Matches(keyMsg, keys.overdue):
		m.export.options.OnlyOverdue = !m.export.options.OnlyOverdue
	case key.Matches(keyMsg, keys.audit):
		m.export.options.IncludeAudit = !m.export.options.IncludeAudit
	case key.Matches(keyMsg, keys.dateRange):
		m.export = m.export.cycleDateRange(time.Now())
	case key.Matches(keyMsg, keys.save):
		m.export.naming = true
		m.export.nameInput.SetValue("")
		m.export.nameInput.Focus()
	case key.Matches(keyMsg, keys.export):
		if m.export.exporting {
			return m, nil
		}
		if err := m.export.validator.Validate(m.ctx, m.export.options); err != nil {
			m.showErrorf(err.Error())
			return m, nil
		}
		m.export.exporting = true
		return m, tea.Batch(m.cmdExport(m.export.options), m.export.spinner.Tick)
	}
	return m, nil
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m appModel) cmdLogon(username, password string) tea.Cmd {
	ctx := m.ctx
	session := m.services.Session
	return func() tea.Msg {
		if err := session.Logon(ctx, username, password); err != nil {
			return logonDoneMsg{err: err}
		}
		return logonDoneMsg{username: username}
	}
}

func (m appModel) cmdLoadView() tea.Cmd {
	ctx := m.ctx
	accounts := m.services.Accounts
	return func() tea.Msg {
		view, err := accounts.List(ctx)
		return viewLoadedMsg{view: view, err: err}
	}
}

// cmdAwaitRefresh blocks on the poller channel and converts its next result
// into a message. Re-issued after every delivery.
func (m appModel) cmdAwaitRefresh() tea.Cmd {
	ctx := m.ctx
	updates := m.services.Refresh.Updates()
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case result := <-updates:
			return refreshedMsg{result: result}
		}
	}
}

func (m appModel) cmdRotate(id string) tea.Cmd {
	ctx := m.ctx
	accounts := m.services.Accounts
	return func() tea.Msg {
		resp, view, err := accounts.Rotate(ctx, id)
		return actionDoneMsg{accountID: id, action: actionRotate, resp: resp, view: view, err: err}
	}
}

func (m appModel) cmdValidate(id string) tea.Cmd {
	ctx := m.ctx
	accounts := m.services.Accounts
	return func() tea.Msg {
		resp, view, err := accounts.Validate(ctx, id)
		return actionDoneMsg{accountID: id, action: actionValidate, resp: resp, view: view, err: err}
	}
}

func (m appModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	accounts := m.services.Accounts
	return func() tea.Msg {
		view, err := accounts.Delete(ctx, id)
		return actionDoneMsg{accountID: id, action: actionDelete, view: view, err: err}
	}
}

func (m appModel) cmdCreateAccount(req models.CreateAccountRequest) tea.Cmd {
	ctx := m.ctx
	accounts := m.services.Accounts
	return func() tea.Msg {
		view, err := accounts.Create(ctx, req)
		return accountCreatedMsg{view: view, err: err}
	}
}

func (m appModel) cmdLoadCredential(id string) tea.Cmd {
	ctx := m.ctx
	accounts := m.services.Accounts
	return func() tea.Msg {
		credential, err := accounts.GetCredential(ctx, id)
		return credentialLoadedMsg{credential: credential, err: err}
	}
}

func (m appModel) cmdLoadHistory(id string) tea.Cmd {
	ctx := m.ctx
	history := m.services.History
	return func() tea.Msg {
		validations, err := history.ValidationHistory(ctx, id)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		audits, err := history.AuditLogs(ctx, id)
		return historyLoadedMsg{validations: validations, audits: audits, err: err}
	}
}

func (m appModel) cmdLoadPresets() tea.Cmd {
	ctx := m.ctx
	exports := m.services.Exports
	return func() tea.Msg {
		presets, err := exports.Presets(ctx)
		if err != nil {
			return presetsLoadedMsg{err: err}
		}
		history, err := exports.History(ctx)
		return presetsLoadedMsg{presets: presets, history: history, err: err}
	}
}

func (m appModel) cmdSavePreset(preset models.ExportPreset) tea.Cmd {
	ctx := m.ctx
	exports := m.services.Exports
	return func() tea.Msg {
		if err := exports.SavePreset(ctx, preset); err != nil {
			return presetSavedMsg{err: err}
		}
		return presetSavedMsg{preset: preset}
	}
}

func (m appModel) cmdExport(opts models.ExportOptions) tea.Cmd {
	ctx := m.ctx
	exports := m.services.Exports
	return func() tea.Msg {
		entry, err := exports.Export(ctx, opts)
		return exportDoneMsg{entry: entry, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return viewLoadedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// actionBanner renders the outcome line for a finished per-account action.
func actionBanner(msg actionDoneMsg) string {
	switch msg.action {
	case actionDelete:
		return "Account deleted"
	case actionRotate:
		if msg.resp.Success {
			return "Password rotated"
		}
		return "Failed to rotate password: " + orMessage(msg.resp.Message)
	case actionValidate:
		if msg.resp.Success {
			return "Credential validated: " + string(msg.resp.ValidationStatus)
		}
		return "Validation failed: " + orMessage(msg.resp.Message)
	}
	return ""
}

func orMessage(message string) string {
	if message == "" {
		return "no details from server"
	}
	return message
}

func focusNextLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
