// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/mock"
	"github.com/MKhiriev/go-key-keeper/models"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// ── advisoryModel ────────────────────────────────────────────────────────────

func TestAdvisoryModel_Update(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
		want advisoryChoice
		quit bool
	}{
		{name: "d dismisses", msg: runeKey('d'), want: choiceDismissed, quit: true},
		{name: "enter acknowledges", msg: tea.KeyMsg{Type: tea.KeyEnter}, want: choiceAcknowledged, quit: true},
		{name: "esc acknowledges", msg: tea.KeyMsg{Type: tea.KeyEsc}, want: choiceAcknowledged, quit: true},
		{name: "ctrl+c acknowledges", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, want: choiceAcknowledged, quit: true},
		{name: "other keys are ignored", msg: runeKey('x'), want: choicePending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, cmd := newAdvisoryModel("notice").Update(tt.msg)

			m := next.(advisoryModel)
			assert.Equal(t, tt.want, m.choice)
			if tt.quit {
				require.NotNil(t, cmd)
				assert.IsType(t, tea.QuitMsg{}, cmd())
			} else {
				assert.Nil(t, cmd)
			}
		})
	}
}

func TestAdvisoryModel_View(t *testing.T) {
	m := newAdvisoryModel("keys are stored on this device")

	view := m.View()
	assert.Contains(t, view, "SECURITY NOTICE")
	assert.Contains(t, view, "keys are stored on this device")
	assert.Contains(t, view, "d: don't show again")

	next, _ := m.Update(runeKey('d'))
	assert.Empty(t, next.View())
}

func TestAdvisoryModel_WindowSize(t *testing.T) {
	next, _ := newAdvisoryModel("x").Update(tea.WindowSizeMsg{Width: 10, Height: 10})
	assert.Equal(t, minWrapWidth, next.(advisoryModel).width)

	next, _ = newAdvisoryModel("x").Update(tea.WindowSizeMsg{Width: 200, Height: 10})
	assert.Equal(t, defaultWrapWidth, next.(advisoryModel).width)
}

// ── AdvisoryPrompt ───────────────────────────────────────────────────────────

func newTestPrompt(t *testing.T, interactive bool) (*AdvisoryPrompt, *mock.MockSecurityAdvisory) {
	t.Helper()
	ctrl := gomock.NewController(t)
	advisory := mock.NewMockSecurityAdvisory(ctrl)
	p := NewAdvisoryPrompt(advisory, logger.Nop())
	p.interactive = func() bool { return interactive }
	return p, advisory
}

func TestAdvisoryPrompt_NotShown(t *testing.T) {
	p, advisory := newTestPrompt(t, true)
	advisory.EXPECT().ShouldShow().Return(false)

	assert.NoError(t, p.Run(context.Background()))
}

func TestAdvisoryPrompt_HeadlessLogsOnly(t *testing.T) {
	p, advisory := newTestPrompt(t, false)
	advisory.EXPECT().ShouldShow().Return(true)
	advisory.EXPECT().Message().Return("notice")

	// no Dismiss expectation: headless runs never persist a choice
	assert.NoError(t, p.Run(context.Background()))
}

func TestAdvisoryPrompt_Apply(t *testing.T) {
	p, advisory := newTestPrompt(t, true)
	writeErr := errors.New("read-only")
	advisory.EXPECT().Dismiss().Return(writeErr)

	assert.NoError(t, p.apply(choiceAcknowledged))
	assert.ErrorIs(t, p.apply(choiceDismissed), writeErr)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func TestWrapText(t *testing.T) {
	got := wrapText("one two three four", 9)
	assert.Equal(t, "one two\nthree\nfour", got)

	for _, line := range strings.Split(wrapText(strings.Repeat("word ", 40), 20), "\n") {
		assert.LessOrEqual(t, len(line), 20)
	}
	assert.Equal(t, "as is", wrapText("as is", 0))
}

func TestRenderBuildInfo(t *testing.T) {
	out := RenderBuildInfo(models.NewAppBuildInfo("1.2.3", "", "abc123"))

	assert.Contains(t, out, "Version: 1.2.3")
	assert.Contains(t, out, "Date: N/A")
	assert.Contains(t, out, "Commit: abc123")
}
