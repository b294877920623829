package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

// MarkdownStyle picks the glamour style for the terminal's background.
// It queries the terminal, so call it before the program starts.
func MarkdownStyle() string {
	if lipgloss.HasDarkBackground() {
		return styles.DarkStyle
	}
	return styles.LightStyle
}

// markdownRenderer renders SKILL.md bodies and remembers the last result
// for each document at the current wrap width.
type markdownRenderer struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
	cache    map[string][]string
}

func newMarkdownRenderer(style string) *markdownRenderer {
	return &markdownRenderer{style: style, cache: make(map[string][]string)}
}

// Lines renders content wrapped at width and returns it split into lines.
// Rendering failures fall back to the raw text.
func (m *markdownRenderer) Lines(key, content string, width int) []string {
	width = max(width, 20)
	if width != m.width || m.renderer == nil {
		// Creating a renderer is expensive; rebuild only on resize.
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(m.style),
			glamour.WithWordWrap(width),
			glamour.WithEmoji(),
		)
		if err != nil {
			return strings.Split(content, "\n")
		}
		m.renderer = r
		m.width = width
		m.cache = make(map[string][]string)
	}

	if lines, ok := m.cache[key]; ok {
		return lines
	}

	rendered, err := m.renderer.Render(content)
	if err != nil {
		return strings.Split(content, "\n")
	}

	lines := strings.Split(rendered, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	m.cache[key] = lines
	return lines
}
