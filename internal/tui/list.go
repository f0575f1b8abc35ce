// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/cpm-tools/vault-console/models"
)

// Per-account actions tracked in the busy map. At most one action can be in
// flight per account; the whole table never locks.
const (
	actionRotate   = "rotate"
	actionValidate = "validate"
	actionDelete   = "delete"
)

type listModel struct {
	all      []models.Account
	filtered []models.Account
	stats    models.AccountStatistics
	idx      int

	// busy maps account id to the action currently running against it.
	busy map[string]string

	filter    textinput.Model
	filtering bool

	loading  bool
	offline  bool
	spinner  spinner.Model
	status   string
	statusOK bool
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	filter := textinput.New()
	filter.Placeholder = "name, host, user or safe"
	filter.Width = 30

	return listModel{
		busy:    make(map[string]string),
		filter:  filter,
		spinner: s,
		loading: true,
	}
}

func (m listModel) current() (models.Account, bool) {
	if len(m.filtered) == 0 || m.idx < 0 || m.idx >= len(m.filtered) {
		return models.Account{}, false
	}
	return m.filtered[m.idx], true
}

// setAccounts swaps in a fresh collection, keeping the cursor on the same
// account when it survived the refetch.
func (m listModel) setAccounts(accounts []models.Account, filtered []models.Account) listModel {
	selectedID := ""
	if current, ok := m.current(); ok {
		selectedID = current.ID
	}

	m.all = accounts
	m.filtered = filtered

	m.idx = 0
	for i, account := range m.filtered {
		if account.ID == selectedID {
			m.idx = i
			break
		}
	}
	return m
}

func (m listModel) isBusy(accountID string) bool {
	_, ok := m.busy[accountID]
	return ok
}

func rotationBadge(s models.RotationStatus) string {
	switch s {
	case models.RotationCurrent:
		return okStyle.Render("current")
	case models.RotationDueSoon:
		return warnStyle.Render("due soon")
	case models.RotationOverdue:
		return badStyle.Render("overdue")
	case models.RotationNoPolicy:
		return helpStyle.Render("no policy")
	default:
		return helpStyle.Render("unknown")
	}
}

func validationBadge(s models.ValidationStatus) string {
	switch s {
	case models.ValidationValid:
		return okStyle.Render("valid")
	case models.ValidationInvalid:
		return badStyle.Render("invalid")
	case models.ValidationPending:
		return warnStyle.Render("pending")
	case models.ValidationUntested:
		return helpStyle.Render("untested")
	default:
		return helpStyle.Render("unknown")
	}
}

func (m listModel) View() string {
	header := titleStyle.Render("Vault Console")
	if m.offline {
		header += "  " + offlineStyle.Render("OFFLINE (cached)")
	}
	out := header + "\n"
	out += fmt.Sprintf("%d accounts · %d active · %d need rotation · %d valid · %d invalid · %d pending · %d untested\n\n",
		m.stats.Total, m.stats.Active, m.stats.RequiringRotation,
		m.stats.Valid, m.stats.Invalid, m.stats.Pending, m.stats.Untested)

	if m.filtering {
		out += "Filter: " + m.filter.View() + "\n\n"
	} else if m.filter.Value() != "" {
		out += "Filter: " + m.filter.Value() + "  " + helpStyle.Render("(/ edit, esc clear)") + "\n\n"
	}

	switch {
	case m.loading:
		out += m.spinner.View() + " Loading...\n"
	case len(m.filtered) == 0 && m.filter.Value() != "":
		out += "No accounts match the filter\n"
	case len(m.filtered) == 0:
		out += "No accounts yet. Press n to create one.\n"
	default:
		for i, account := range m.filtered {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			marker := ""
			if action, busy := m.busy[account.ID]; busy {
				marker = "  " + m.spinner.View() + " " + action
			}
			out += fmt.Sprintf("%s%-24s %-20s %-14s %-10s %s%s\n",
				cursor,
				truncate(account.Name, 24),
				truncate(account.Hostname, 20),
				truncate(account.Username, 14),
				rotationBadge(account.RotationStatus),
				validationBadge(account.ValidationStatus),
				marker)
		}
	}

	if m.status != "" {
		out += "\n"
		if m.statusOK {
			out += okStyle.Render(m.status) + "\n"
		} else {
			out += badStyle.Render(m.status) + "\n"
		}
	}

	out += "\n" + helpStyle.Render("enter open  n new  r rotate  v validate  d delete  h history  x export  / filter  R refresh  L logout  q quit")
	return out
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
