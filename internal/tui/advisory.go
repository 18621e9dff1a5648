// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWrapWidth = 60
	minWrapWidth     = 20
)

type advisoryChoice int

const (
	choicePending advisoryChoice = iota
	choiceAcknowledged
	choiceDismissed
)

// advisoryModel shows the security notice until the user acknowledges or
// dismisses it for good.
type advisoryModel struct {
	message string
	choice  advisoryChoice
	width   int
}

func newAdvisoryModel(message string) advisoryModel {
	return advisoryModel{message: message, width: defaultWrapWidth}
}

func (m advisoryModel) Init() tea.Cmd { return nil }

func (m advisoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// border + padding take 6 columns, page indent 2
		m.width = max(min(msg.Width-8, defaultWrapWidth), minWrapWidth)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.dismiss):
			m.choice = choiceDismissed
			return m, tea.Quit
		case key.Matches(msg, keys.enter), key.Matches(msg, keys.quit):
			m.choice = choiceAcknowledged
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m advisoryModel) View() string {
	if m.choice != choicePending {
		return ""
	}
	return overlayBoxStyle.Render(renderPage("SECURITY NOTICE", wrapText(m.message, m.width), keys.helpLine()))
}
