package views

import (
	"github.com/asteroid-belt/skillsm/internal/tui/theme"
	"github.com/charmbracelet/lipgloss"
)

// RenderInstallModal renders the install result over the full screen.
func RenderInstallModal(command, output string, width, height int) string {
	modalWidth := min(width*9/10, 80)

	title := lipgloss.NewStyle().
		Foreground(theme.Current.Accent).
		Bold(true).
		Render("Installing Skill")

	label := lipgloss.NewStyle().Foreground(theme.Current.TextMuted)
	cmd := lipgloss.NewStyle().
		Foreground(theme.Current.Success).
		Width(modalWidth - 4).
		Render(command)

	outColor := theme.Current.Text
	if output == "" {
		output = "Running..."
		outColor = theme.Current.Warning
	}
	out := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current.TextMuted).
		Foreground(outColor).
		Width(modalWidth-6).
		Padding(0, 1).
		Render(output)

	hint := lipgloss.NewStyle().
		Foreground(theme.Current.TextMuted).
		Italic(true).
		Render("Press Enter or Esc to close")

	body := lipgloss.JoinVertical(lipgloss.Left,
		title, "",
		label.Render("Command:"), cmd, "",
		label.Render("Output"), out, "",
		hint,
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current.Accent).
		Padding(1, 1).
		Width(modalWidth).
		Render(body)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
