package views

import (
	"fmt"
	"strings"

	"github.com/asteroid-belt/skillsm/internal/app"
	"github.com/asteroid-belt/skillsm/internal/models"
	"github.com/asteroid-belt/skillsm/internal/tui/theme"
	"github.com/charmbracelet/lipgloss"
)

// ListView renders the ranked skill table of the active view.
type ListView struct {
	width  int
	height int
	offset int // first visible row
}

// NewListView creates a new list view.
func NewListView() *ListView {
	return &ListView{}
}

// SetSize sets the width and height of the view.
func (lv *ListView) SetSize(width, height int) {
	lv.width = width
	lv.height = height
}

// columns returns the cell widths of the rank, name, source, installs
// and delta columns.
func (lv *ListView) columns(showDelta bool) (rank, name, source, installs, delta int) {
	rank, installs = 5, 10
	if showDelta {
		delta = 9
	}
	rest := max(lv.width-rank-installs-delta-6, 20)
	name = rest * 55 / 100
	source = rest - name
	return
}

// View renders the table for the state's current view.
func (lv *ListView) View(s *app.State, spinner string) string {
	vs := s.Current()
	kind := s.CurrentView()
	showDelta := kind != models.ViewAllTime

	titleStyle := lipgloss.NewStyle().
		Foreground(theme.Current.Accent).
		Bold(true).
		MarginLeft(1)
	title := fmt.Sprintf("%s (%d skills)", kind.Label(), vs.Len())
	if vs.Filtered() {
		title = fmt.Sprintf("%s (%d of %d skills matching %q)", kind.Label(), vs.Len(), len(vs.Entries()), s.Query())
	}
	header := titleStyle.Render(title)

	switch {
	case vs.Len() == 0 && vs.Loading():
		return lipgloss.JoinVertical(lipgloss.Left, header, "", lv.notice(spinner+" Loading skills...", theme.Current.Warning))
	case vs.Len() == 0 && vs.Err() != "":
		return lipgloss.JoinVertical(lipgloss.Left, header, "",
			lv.notice("Failed to load: "+vs.Err(), theme.Current.Error),
			lv.notice("Press r to retry", theme.Current.TextMuted))
	case vs.Len() == 0:
		return lipgloss.JoinVertical(lipgloss.Left, header, "", lv.notice("No skills", theme.Current.TextMuted))
	}

	rankW, nameW, sourceW, installsW, deltaW := lv.columns(showDelta)

	headStyle := lipgloss.NewStyle().Foreground(theme.Current.Primary).Bold(true)
	cols := []string{
		padLeft("#", rankW), padRight("Name", nameW), padRight("Source", sourceW), padLeft("Installs", installsW),
	}
	if showDelta {
		cols = append(cols, padLeft("Δ", deltaW))
	}
	lines := []string{header, "", "  " + headStyle.Render(strings.Join(cols, " "))}

	rows := max(lv.height-len(lines), 1)
	selected, hasSel := vs.SelectedIndex()
	lv.scrollTo(selected, hasSel, rows, vs.Len())

	rowStyle := lipgloss.NewStyle().Foreground(theme.Current.Text)
	selStyle := lipgloss.NewStyle().
		Foreground(theme.Current.TextHighlight).
		Background(theme.Current.Overlay).
		Bold(true)
	deltaUp := lipgloss.NewStyle().Foreground(theme.Current.Success)
	deltaDown := lipgloss.NewStyle().Foreground(theme.Current.Error)

	end := min(lv.offset+rows, vs.Len())
	for i := lv.offset; i < end; i++ {
		e, rank, _ := vs.At(i)
		cells := []string{
			padLeft(fmt.Sprint(rank), rankW),
			padRight(e.DisplayName, nameW),
			padRight(e.SourceRepo, sourceW),
			padLeft(formatCount(e.InstallCount), installsW),
		}
		line := strings.Join(cells, " ")

		prefix := "  "
		style := rowStyle
		if hasSel && i == selected {
			prefix = "▶ "
			style = selStyle
		}
		rendered := prefix + style.Render(line)
		if showDelta {
			d := e.Delta()
			ds := lipgloss.NewStyle()
			switch {
			case d > 0:
				ds = deltaUp
			case d < 0:
				ds = deltaDown
			}
			rendered += " " + ds.Render(padLeft(formatDelta(d), deltaW))
		}
		lines = append(lines, rendered)
	}

	if vs.Loading() {
		lines = append(lines, lv.notice(spinner+" Refreshing...", theme.Current.Warning))
	}
	return strings.Join(lines, "\n")
}

// scrollTo keeps the selected row inside the visible window.
func (lv *ListView) scrollTo(selected int, ok bool, rows, total int) {
	if !ok {
		selected = 0
	}
	if selected < lv.offset {
		lv.offset = selected
	}
	if selected >= lv.offset+rows {
		lv.offset = selected - rows + 1
	}
	lv.offset = max(min(lv.offset, total-rows), 0)
}

func (lv *ListView) notice(text string, color lipgloss.AdaptiveColor) string {
	return lipgloss.NewStyle().
		Foreground(color).
		MarginLeft(2).
		Render(text)
}
