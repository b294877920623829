package views

import (
	"fmt"
	"strings"

	"github.com/asteroid-belt/skillsm/internal/models"
	"github.com/asteroid-belt/skillsm/internal/tui/theme"
	"github.com/charmbracelet/lipgloss"
)

// RenderTabs renders the view tabs header with the active view highlighted.
func RenderTabs(current models.ViewKind, width int) string {
	numStyle := lipgloss.NewStyle().Foreground(theme.Current.TextMuted)
	tabStyle := lipgloss.NewStyle().
		Foreground(theme.Current.Text).
		Padding(0, 1)
	activeStyle := tabStyle.
		Foreground(theme.Current.Primary).
		Bold(true).
		Underline(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(theme.Current.Accent).
		Bold(true).
		PaddingRight(2)

	tabs := []string{titleStyle.Render("skills.sh")}
	for i, v := range models.AllViews() {
		style := tabStyle
		if v == current {
			style = activeStyle
		}
		tabs = append(tabs, numStyle.Render(fmt.Sprintf("[%d]", i+1))+style.Render(v.Label()))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	divider := lipgloss.NewStyle().
		Foreground(theme.Current.TextMuted).
		Render(strings.Repeat("─", max(width, 0)))

	return lipgloss.JoinVertical(lipgloss.Left, row, divider)
}
