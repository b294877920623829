package tui

import (
	"context"
	"fmt"

	"github.com/asteroid-belt/skillsm/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// frameRate is the render cadence in frames per second.
const frameRate = 20

// Run executes the TUI program until the user quits or ctx is done.
func Run(ctx context.Context, initial models.ViewKind, deps Deps) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewModel(ctx, initial, deps)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithFPS(frameRate),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			// Interrupted by signal.
			return nil
		}
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
