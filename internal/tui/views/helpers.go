package views

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncate shortens s to fit width terminal cells, marking the cut with
// an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// padRight truncates or pads s to exactly width cells.
func padRight(s string, width int) string {
	return runewidth.FillRight(truncate(s, width), width)
}

// padLeft right-aligns s in width cells.
func padLeft(s string, width int) string {
	return runewidth.FillLeft(truncate(s, width), width)
}

// formatCount renders n with thousands separators.
func formatCount(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// formatDelta renders a change delta with an explicit sign.
func formatDelta(d int64) string {
	if d > 0 {
		return "+" + formatCount(d)
	}
	return formatCount(d)
}
