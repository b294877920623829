package views

import (
	"fmt"
	"strings"

	"github.com/asteroid-belt/skillsm/internal/app"
	"github.com/asteroid-belt/skillsm/internal/models"
	"github.com/asteroid-belt/skillsm/internal/scraper"
	"github.com/asteroid-belt/skillsm/internal/tui/theme"
	"github.com/charmbracelet/lipgloss"
)

// headerHeight is the number of lines above the scrolled body.
const headerHeight = 5

// DetailView shows one skill's SKILL.md with a metadata header.
type DetailView struct {
	width       int
	height      int
	markdown    *markdownRenderer
	commandLine func(models.CatalogEntry) string
}

// NewDetailView creates a detail view rendering markdown in the given
// glamour style. commandLine renders the install command shown in the
// header; nil falls back to CatalogEntry.InstallCommand.
func NewDetailView(style string, commandLine func(models.CatalogEntry) string) *DetailView {
	if commandLine == nil {
		commandLine = models.CatalogEntry.InstallCommand
	}
	return &DetailView{markdown: newMarkdownRenderer(style), commandLine: commandLine}
}

// SetSize sets the width and height of the view.
func (dv *DetailView) SetSize(width, height int) {
	dv.width = width
	dv.height = height
}

func (dv *DetailView) viewportHeight() int {
	return max(dv.height-headerHeight-2, 5)
}

// View renders the detail screen for the state's open entry.
func (dv *DetailView) View(s *app.State, spinner string) string {
	entry := s.DetailEntry()
	md, ok := s.Detail(entry.SkillID)

	titleStyle := lipgloss.NewStyle().Foreground(theme.Current.Primary).Bold(true)
	metaStyle := lipgloss.NewStyle().Foreground(theme.Current.TextMuted)

	name := entry.DisplayName
	var doc scraper.SkillDocument
	if ok {
		doc = scraper.ParseSkillDocument(md)
		if doc.Name != "" {
			name = doc.Name
		}
	}

	meta := fmt.Sprintf("%s  •  %s installs", entry.SourceRepo, formatCount(entry.InstallCount))
	header := []string{
		titleStyle.Render(name),
		metaStyle.Render(meta),
		lipgloss.NewStyle().Foreground(theme.Current.Success).Render("$ " + dv.commandLine(entry)),
		lipgloss.NewStyle().
			Foreground(theme.Current.Text).
			Width(max(dv.width-2, 10)).
			MaxHeight(1).
			Render(doc.Description),
		metaStyle.Render(strings.Repeat("─", max(dv.width-2, 0))),
	}

	var body string
	switch {
	case !ok && s.DetailLoading():
		body = lipgloss.NewStyle().Foreground(theme.Current.Warning).Render(spinner + " Loading SKILL.md...")
	case !ok:
		body = lipgloss.NewStyle().Foreground(theme.Current.Error).Render("No SKILL.md could be loaded for this skill.")
	default:
		body = dv.renderBody(entry.SkillID, doc.Body, s.DetailScroll())
	}

	return lipgloss.NewStyle().
		PaddingLeft(1).
		Render(strings.Join(append(header, body), "\n"))
}

// renderBody renders the visible window of the document. Offsets past the
// end show the last lines.
func (dv *DetailView) renderBody(key, content string, scroll int) string {
	lines := dv.markdown.Lines(key, content, min(dv.width-4, 100))
	rows := dv.viewportHeight()

	maxScroll := max(len(lines)-rows, 0)
	start := min(scroll, maxScroll)
	end := min(len(lines), start+rows)
	visible := append([]string(nil), lines[start:end]...)
	for len(visible) < rows {
		visible = append(visible, "")
	}

	indicator := lipgloss.NewStyle().
		Foreground(theme.Current.TextMuted).
		Italic(true).
		Render(fmt.Sprintf("Line %d-%d of %d", min(start+1, end), end, len(lines)))

	return strings.Join(visible, "\n") + "\n" + indicator
}
