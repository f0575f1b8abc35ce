// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[0].Placeholder = "username"
	inputs[1].Placeholder = "password"
	inputs[1].EchoMode = textinput.EchoPassword
	inputs[1].EchoCharacter = '*'
	inputs[0].Focus()

	return loginModel{inputs: inputs}
}

func (m loginModel) View() string {
	out := titleStyle.Render("Vault Console · Logon") + "\n\n"
	out += "Username: [" + m.inputs[0].View() + "]\n"
	out += "Password: [" + m.inputs[1].View() + "]\n\n"
	if m.submitting {
		out += "Signing in...\n\n"
	}
	out += helpStyle.Render("enter sign in  tab next field  ctrl+c quit")
	return out
}
