// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	logout   key.Binding
	newItem  key.Binding
	refresh  key.Binding
	filter   key.Binding
	delete   key.Binding
	rotate   key.Binding
	validate key.Binding
	history  key.Binding
	export   key.Binding
	copy     key.Binding
	copyUser key.Binding
	reveal   key.Binding
	save     key.Binding
	yes      key.Binding
	no       key.Binding

	format    key.Binding
	failures  key.Binding
	overdue   key.Binding
	audit     key.Binding
	dateRange key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("L")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	refresh:  key.NewBinding(key.WithKeys("R")),
	filter:   key.NewBinding(key.WithKeys("/")),
	delete:   key.NewBinding(key.WithKeys("d")),
	rotate:   key.NewBinding(key.WithKeys("r")),
	validate: key.NewBinding(key.WithKeys("v")),
	history:  key.NewBinding(key.WithKeys("h")),
	export:   key.NewBinding(key.WithKeys("x")),
	copy:     key.NewBinding(key.WithKeys("c")),
	copyUser: key.NewBinding(key.WithKeys("u")),
	reveal:   key.NewBinding(key.WithKeys("p")),
	save:     key.NewBinding(key.WithKeys("s")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),

	format:    key.NewBinding(key.WithKeys("f")),
	failures:  key.NewBinding(key.WithKeys("F")),
	overdue:   key.NewBinding(key.WithKeys("O")),
	audit:     key.NewBinding(key.WithKeys("A")),
	dateRange: key.NewBinding(key.WithKeys("D")),
}
