// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	okStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	badStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	offlineStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
