// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter   key.Binding
	dismiss key.Binding
	quit    key.Binding
}

var keys = keyMap{
	enter:   key.NewBinding(key.WithKeys("enter", "esc", " "), key.WithHelp("enter", "continue")),
	dismiss: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "don't show again")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) helpLine() string {
	var line string
	for i, b := range []key.Binding{k.enter, k.dismiss} {
		if i > 0 {
			line += "    "
		}
		h := b.Help()
		line += h.Key + ": " + h.Desc
	}
	return line
}
