package views

import (
	"strings"

	"github.com/asteroid-belt/skillsm/internal/app"
	"github.com/asteroid-belt/skillsm/internal/tui/theme"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// Command represents a single keyboard command.
type Command struct {
	Key         string
	Description string
}

// HelpView displays the available keybindings.
type HelpView struct {
	width  int
	height int
}

// NewHelpView creates a new help view.
func NewHelpView() *HelpView {
	return &HelpView{}
}

// SetSize sets the width and height of the view.
func (hv *HelpView) SetSize(width, height int) {
	hv.width = width
	hv.height = height
}

func commandsFor(bindings ...key.Binding) []Command {
	cmds := make([]Command, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		cmds = append(cmds, Command{Key: h.Key, Description: h.Desc})
	}
	return cmds
}

// View renders the help overlay for the keymap.
func (hv *HelpView) View(km app.Keymap) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Current.Accent).
		Bold(true).
		MarginBottom(1).
		Render("Help - Available Commands")

	sectionStyle := lipgloss.NewStyle().
		Foreground(theme.Current.Primary).
		Bold(true).
		MarginTop(1)

	views := append([]key.Binding{km.NextTab, km.PrevTab}, km.Tabs[:]...)
	sections := []struct {
		name     string
		commands []Command
	}{
		{"Views", commandsFor(views...)},
		{"Navigation", commandsFor(km.Up, km.Down, km.Top, km.Bottom, km.PageUp, km.PageDown)},
		{"Actions", commandsFor(km.Select, km.Back, km.Search, km.Install, km.CopyInstall, km.Refresh, km.Help, km.Quit)},
		{"Search", []Command{
			{Key: "type", Description: "filter by name, id or source"},
			{Key: "backspace", Description: "delete last character"},
			{Key: "enter", Description: "keep the filter"},
			{Key: "esc", Description: "clear the filter"},
		}},
	}

	parts := []string{title}
	for _, sec := range sections {
		parts = append(parts, sectionStyle.Render(sec.name), hv.renderCommandTable(sec.commands))
	}

	footer := lipgloss.NewStyle().
		Foreground(theme.Current.TextMuted).
		Italic(true).
		MarginTop(1).
		Render("Press Esc or ? to close")
	parts = append(parts, footer)

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderCommandTable renders the commands as a two column table.
func (hv *HelpView) renderCommandTable(commands []Command) string {
	keyColWidth := 0
	for _, cmd := range commands {
		keyColWidth = max(keyColWidth, lipgloss.Width(cmd.Key))
	}
	keyColWidth += 2

	keyStyle := lipgloss.NewStyle().
		Foreground(theme.Current.Accent).
		Bold(true).
		Width(keyColWidth)
	descStyle := lipgloss.NewStyle().Foreground(theme.Current.Text)

	rows := make([]string, 0, len(commands))
	for _, cmd := range commands {
		rows = append(rows, "  "+keyStyle.Render(cmd.Key)+descStyle.Render(cmd.Description))
	}
	return strings.Join(rows, "\n")
}
