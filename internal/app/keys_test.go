package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestKeymap_Resolve(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want KeyInput
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, KeyInput{Action: KeyQuit}},
		{"Q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Q")}, KeyInput{Action: KeyQuit}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, KeyInput{Action: KeyQuit}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, KeyInput{Action: KeyNextTab}},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, KeyInput{Action: KeyPrevTab}},
		{"1", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")}, KeyInput{Action: KeySelectTab, Tab: 0}},
		{"3", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")}, KeyInput{Action: KeySelectTab, Tab: 2}},
		{"k", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}, KeyInput{Action: KeyUp}},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, KeyInput{Action: KeyDown}},
		{"g", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")}, KeyInput{Action: KeyTop}},
		{"G", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")}, KeyInput{Action: KeyBottom}},
		{"pgup", tea.KeyMsg{Type: tea.KeyPgUp}, KeyInput{Action: KeyPageUp}},
		{"pgdown", tea.KeyMsg{Type: tea.KeyPgDown}, KeyInput{Action: KeyPageDown}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, KeyInput{Action: KeySelect}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, KeyInput{Action: KeyBack}},
		{"/", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")}, KeyInput{Action: KeyStartSearch}},
		{"i", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")}, KeyInput{Action: KeyInstall}},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, KeyInput{Action: KeyRefresh}},
		{"?", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}, KeyInput{Action: KeyHelp}},
		{"c", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")}, KeyInput{Action: KeyCopyInstall}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.Resolve(tt.msg)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeymap_Unbound(t *testing.T) {
	km := DefaultKeymap()

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("x")},
		{Type: tea.KeyF5},
		{Type: tea.KeyBackspace},
	} {
		_, ok := km.Resolve(msg)
		assert.False(t, ok, msg.String())
	}
}
