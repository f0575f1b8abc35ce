// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"

	"github.com/cpm-tools/vault-console/models"
)

type historyModel struct {
	accountName string
	validations []models.ValidationHistoryEntry
	audits      []models.AuditLog
	showAudit   bool
	loading     bool
}

func resultBadge(r models.HistoryResult) string {
	switch r {
	case models.ResultSuccess:
		return okStyle.Render("success")
	case models.ResultFailure:
		return badStyle.Render("failure")
	case models.ResultWarning:
		return warnStyle.Render("warning")
	case models.ResultInfo:
		return helpStyle.Render("info")
	default:
		return helpStyle.Render("unknown")
	}
}

func (m historyModel) View() string {
	tab := "Validations"
	if m.showAudit {
		tab = "Audit log"
	}
	out := titleStyle.Render("History · "+m.accountName) + "  [" + tab + "]\n\n"

	if m.loading {
		return out + "Loading...\n"
	}

	if m.showAudit {
		if len(m.audits) == 0 {
			out += "No audit records\n"
		}
		for _, entry := range m.audits {
			out += fmt.Sprintf("%s  %-10s %-18s %s\n",
				entry.Timestamp.Format("2006-01-02 15:04"),
				resultBadge(entry.Result),
				truncate(entry.Action, 18),
				truncate(entry.Actor, 20))
		}
	} else {
		if len(m.validations) == 0 {
			out += "No validation records\n"
		}
		for _, entry := range m.validations {
			line := fmt.Sprintf("%s  %-10s %s",
				entry.Timestamp.Format("2006-01-02 15:04"),
				resultBadge(entry.Result),
				truncate(entry.Message, 48))
			out += line + "\n"
		}
	}

	out += "\n" + helpStyle.Render("tab switch view  esc back")
	return out
}
