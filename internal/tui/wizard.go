// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/cpm-tools/vault-console/internal/validators"
	"github.com/cpm-tools/vault-console/models"
)

// wizardStep enumerates the four linear steps of the account creation
// wizard. Steps can only be entered in order and only after the previous
// step passed validation.
type wizardStep int

const (
	stepSystemType wizardStep = iota
	stepTarget
	stepCredential
	stepReview
)

const (
	targetName = iota
	targetHostname
	targetPort
	targetConnMethod
	targetSafe
)

const (
	credUsername = iota
	credPassword
	credPolicy
)

type wizardModel struct {
	step    wizardStep
	typeIdx int

	targetInputs []textinput.Model
	credInputs   []textinput.Model
	focus        int

	submitting bool
	validator  validators.Validator
}

func newWizardModel() wizardModel {
	targetInputs := make([]textinput.Model, 5)
	for i := range targetInputs {
		targetInputs[i] = textinput.New()
		targetInputs[i].Width = 40
	}
	targetInputs[targetSafe].SetValue("Default")

	credInputs := make([]textinput.Model, 3)
	for i := range credInputs {
		credInputs[i] = textinput.New()
		credInputs[i].Width = 40
	}
	credInputs[credPassword].EchoMode = textinput.EchoPassword
	credInputs[credPassword].EchoCharacter = '*'

	return wizardModel{
		targetInputs: targetInputs,
		credInputs:   credInputs,
		validator:    validators.NewAccountValidator(),
	}
}

func (m wizardModel) systemType() models.SystemType {
	types := models.SystemTypes()
	if m.typeIdx < 0 || m.typeIdx >= len(types) {
		return types[0]
	}
	return types[m.typeIdx]
}

func (m wizardModel) port() int {
	raw := strings.TrimSpace(m.targetInputs[targetPort].Value())
	if raw == "" {
		return defaultPort(m.systemType())
	}
	port, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return port
}

// payload assembles the creation request from the wizard's current state.
// Called once, on submit from the review step.
func (m wizardModel) payload() models.CreateAccountRequest {
	return models.CreateAccountRequest{
		Name:             strings.TrimSpace(m.targetInputs[targetName].Value()),
		SystemType:       m.systemType(),
		Hostname:         strings.TrimSpace(m.targetInputs[targetHostname].Value()),
		Port:             m.port(),
		ConnectionMethod: strings.TrimSpace(m.targetInputs[targetConnMethod].Value()),
		Safe:             strings.TrimSpace(m.targetInputs[targetSafe].Value()),
		Username:         strings.TrimSpace(m.credInputs[credUsername].Value()),
		Password:         m.credInputs[credPassword].Value(),
		RotationPolicyID: strings.TrimSpace(m.credInputs[credPolicy].Value()),
	}
}

// validateStep checks only the fields owned by the current step, so an
// operator is never blocked by a field they have not reached yet.
func (m wizardModel) validateStep(ctx context.Context) error {
	req := m.payload()

	switch m.step {
	case stepSystemType:
		return m.validator.Validate(ctx, req, validators.FieldSystemType)
	case stepTarget:
		return m.validator.Validate(ctx, req,
			validators.FieldName, validators.FieldHostname, validators.FieldPort, validators.FieldSafe)
	case stepCredential:
		return m.validator.Validate(ctx, req,
			validators.FieldUsername, validators.FieldPassword)
	case stepReview:
		return m.validator.Validate(ctx, req)
	}

	return nil
}

// next advances to the following step after the current one validated. The
// review step does not advance; submission is handled by the app model.
func (m wizardModel) next(ctx context.Context) (wizardModel, error) {
	if err := m.validateStep(ctx); err != nil {
		return m, err
	}
	if m.step < stepReview {
		m.step++
		m.focus = 0
		m = m.applyFocus()
	}
	return m, nil
}

// back returns to the previous step, preserving everything already entered.
func (m wizardModel) back() wizardModel {
	if m.step > stepSystemType {
		m.step--
		m.focus = 0
		m = m.applyFocus()
	}
	return m
}

func (m wizardModel) stepInputs() []textinput.Model {
	switch m.step {
	case stepTarget:
		return m.targetInputs
	case stepCredential:
		return m.credInputs
	}
	return nil
}

func (m wizardModel) applyFocus() wizardModel {
	inputs := m.stepInputs()
	for i := range inputs {
		if i == m.focus {
			inputs[i].Focus()
		} else {
			inputs[i].Blur()
		}
	}
	return m
}

func (m wizardModel) focusNext() wizardModel {
	inputs := m.stepInputs()
	if len(inputs) == 0 {
		return m
	}
	m.focus = (m.focus + 1) % len(inputs)
	return m.applyFocus()
}

func (m wizardModel) focusPrev() wizardModel {
	inputs := m.stepInputs()
	if len(inputs) == 0 {
		return m
	}
	m.focus = (m.focus - 1 + len(inputs)) % len(inputs)
	return m.applyFocus()
}

// defaultPort maps a system type to its conventional management port, used
// when the operator leaves the port field blank.
func defaultPort(t models.SystemType) int {
	switch t {
	case models.SystemLinux, models.SystemUnix, models.SystemMacOS,
		models.SystemCiscoIOS, models.SystemJuniper:
		return 22
	case models.SystemWindows:
		return 3389
	case models.SystemOracleDB:
		return 1521
	case models.SystemMSSQL:
		return 1433
	case models.SystemMySQL:
		return 3306
	case models.SystemPostgreSQL:
		return 5432
	case models.SystemMongoDB:
		return 27017
	case models.SystemAD:
		return 389
	case models.SystemVMware, models.SystemWebApp:
		return 443
	default:
		return 22
	}
}

func systemTypeName(t models.SystemType) string {
	switch t {
	case models.SystemLinux:
		return "Linux"
	case models.SystemWindows:
		return "Windows"
	case models.SystemUnix:
		return "Unix"
	case models.SystemMacOS:
		return "macOS"
	case models.SystemCiscoIOS:
		return "Cisco IOS"
	case models.SystemJuniper:
		return "Juniper"
	case models.SystemOracleDB:
		return "Oracle Database"
	case models.SystemMSSQL:
		return "Microsoft SQL Server"
	case models.SystemMySQL:
		return "MySQL"
	case models.SystemPostgreSQL:
		return "PostgreSQL"
	case models.SystemMongoDB:
		return "MongoDB"
	case models.SystemAD:
		return "Active Directory"
	case models.SystemVMware:
		return "VMware ESXi"
	case models.SystemWebApp:
		return "Web Application"
	default:
		return string(t)
	}
}

func (m wizardModel) View() string {
	switch m.step {
	case stepSystemType:
		out := titleStyle.Render("New account · 1/4 System type") + "\n\n"
		for i, t := range models.SystemTypes() {
			cursor := "  "
			if i == m.typeIdx {
				cursor = "> "
			}
			out += cursor + systemTypeName(t) + "\n"
		}
		out += "\n" + helpStyle.Render("enter next  esc cancel")
		return out

	case stepTarget:
		out := titleStyle.Render("New account · 2/4 Target") + "\n\n"
		out += "Name:        [" + m.targetInputs[targetName].View() + "]\n"
		out += "Hostname/IP: [" + m.targetInputs[targetHostname].View() + "]\n"
		out += fmt.Sprintf("Port:        [%s] (blank = %d)\n", m.targetInputs[targetPort].View(), defaultPort(m.systemType()))
		out += "Method:      [" + m.targetInputs[targetConnMethod].View() + "]\n"
		out += "Safe:        [" + m.targetInputs[targetSafe].View() + "]\n\n"
		out += helpStyle.Render("enter next  esc back  tab next field")
		return out

	case stepCredential:
		out := titleStyle.Render("New account · 3/4 Credential") + "\n\n"
		out += "Username:        [" + m.credInputs[credUsername].View() + "]\n"
		out += "Password:        [" + m.credInputs[credPassword].View() + "]\n"
		out += "Rotation policy: [" + m.credInputs[credPolicy].View() + "]\n\n"
		out += helpStyle.Render("enter next  esc back  tab next field")
		return out

	case stepReview:
		req := m.payload()
		out := titleStyle.Render("New account · 4/4 Review") + "\n\n"
		out += fmt.Sprintf("System type: %s\n", systemTypeName(req.SystemType))
		out += fmt.Sprintf("Name:        %s\n", req.Name)
		out += fmt.Sprintf("Target:      %s:%d\n", req.Hostname, req.Port)
		out += fmt.Sprintf("Safe:        %s\n", req.Safe)
		out += fmt.Sprintf("Username:    %s\n", req.Username)
		out += "Password:    ••••••••\n"
		if req.RotationPolicyID != "" {
			out += fmt.Sprintf("Policy:      %s\n", req.RotationPolicyID)
		}
		out += "\n"
		if m.submitting {
			out += "Creating...\n\n"
		}
		out += helpStyle.Render("enter create  esc back")
		return out
	}

	return ""
}
