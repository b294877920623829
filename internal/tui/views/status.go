package views

import (
	"strings"

	"github.com/asteroid-belt/skillsm/internal/app"
	"github.com/asteroid-belt/skillsm/internal/tui/theme"
	"github.com/charmbracelet/lipgloss"
)

var modeHints = map[app.Mode]string{
	app.ModeList:       "q:quit  /:search  i:install  c:copy  r:refresh  ?:help  tab:switch view",
	app.ModeDetail:     "esc:back  j/k:scroll  c:copy install",
	app.ModeSearch:     "esc:cancel  enter:confirm",
	app.ModeHelp:       "esc/?:close",
	app.ModeInstalling: "enter/esc:close",
}

// RenderStatusBar renders the bottom line: mode badge, loading indicator,
// status message and key hints for the mode.
func RenderStatusBar(s *app.State, spinner string, width int) string {
	mode := s.Mode()

	badgeText := " " + mode.String() + " "
	if mode == app.ModeSearch {
		badgeText = " SEARCH: " + s.Query() + "█ "
	}
	badge := lipgloss.NewStyle().
		Background(theme.ModeColor(mode.String())).
		Foreground(theme.Current.TextInverse).
		Bold(true).
		Render(badgeText)

	parts := []string{badge}

	if s.Current().Loading() || s.DetailLoading() {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(theme.Current.Warning).
			Render(spinner+" Loading..."))
	}

	if msg := s.Status(); msg != "" {
		color := theme.Current.Text
		if strings.HasPrefix(msg, "Error:") {
			color = theme.Current.Error
		}
		parts = append(parts, lipgloss.NewStyle().Foreground(color).Render(msg))
	}

	left := strings.Join(parts, " ")
	hints := lipgloss.NewStyle().
		Foreground(theme.Current.TextMuted).
		Render(modeHints[mode])

	gap := width - lipgloss.Width(left) - lipgloss.Width(hints)
	if gap < 1 {
		return truncate(left, width)
	}
	return left + strings.Repeat(" ", gap) + hints
}
