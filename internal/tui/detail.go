// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"

	"github.com/cpm-tools/vault-console/models"
)

type detailModel struct {
	credential models.Credential
	revealed   bool
	loading    bool
	status     string
}

func isDatabaseType(t models.SystemType) bool {
	switch t {
	case models.SystemOracleDB, models.SystemMSSQL, models.SystemMySQL,
		models.SystemPostgreSQL, models.SystemMongoDB:
		return true
	}
	return false
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func (m detailModel) View() string {
	if m.loading {
		return "Loading credential...\n"
	}

	c := m.credential
	out := titleStyle.Render(c.Name) + "  [" + systemTypeName(c.SystemType) + "]\n\n"

	out += fmt.Sprintf("Target:     %s:%d\n", orNA(c.Hostname), c.Port)
	out += fmt.Sprintf("Method:     %s\n", orNA(c.ConnectionMethod))
	out += fmt.Sprintf("Safe:       %s\n", orNA(c.Safe))
	out += fmt.Sprintf("Owner:      %s\n", orNA(c.Owner))
	out += fmt.Sprintf("Username:   %s\n", orNA(c.Username))
	if m.revealed && c.Password != "" {
		out += fmt.Sprintf("Password:   %s\n", c.Password)
	} else {
		out += "Password:   ••••••••\n"
	}
	out += fmt.Sprintf("Rotation:   %s (policy %s)\n", rotationBadge(c.RotationStatus), orNA(c.RotationPolicyID))
	out += fmt.Sprintf("Validation: %s\n", validationBadge(c.ValidationStatus))
	if c.VerificationError != "" {
		out += "Last error: " + badStyle.Render(c.VerificationError) + "\n"
	}

	if isDatabaseType(c.SystemType) {
		out += "\n" + titleStyle.Render("Database connection") + "\n"
		out += fmt.Sprintf("Host:       %s:%d\n", orNA(c.DatabaseHost), c.DatabasePort)
		out += fmt.Sprintf("Database:   %s\n", orNA(c.DatabaseName))
		out += fmt.Sprintf("Schema:     %s\n", orNA(c.DatabaseSchema))
		ssl := "disabled"
		if c.SSLEnabled {
			ssl = "enabled"
		}
		out += fmt.Sprintf("SSL:        %s\n", ssl)
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("p reveal/hide  c copy password  u copy username  r rotate  v validate  h history  d delete  esc back")
	return out
}
