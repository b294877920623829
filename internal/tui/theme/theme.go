// Package theme provides color theming for the TUI.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	// Primary colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor

	// Background colors
	Surface lipgloss.AdaptiveColor
	Overlay lipgloss.AdaptiveColor

	// Text colors
	Text          lipgloss.AdaptiveColor
	TextMuted     lipgloss.AdaptiveColor
	TextHighlight lipgloss.AdaptiveColor
	TextInverse   lipgloss.AdaptiveColor

	// Semantic colors
	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor
}

// DefaultTheme is the default color scheme.
var DefaultTheme = Theme{
	Primary:   lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#F1C40F"}, // Gold
	Secondary: lipgloss.AdaptiveColor{Light: "#6B3FA0", Dark: "#9B59B6"}, // Purple
	Accent:    lipgloss.AdaptiveColor{Light: "#0088CC", Dark: "#00D4FF"}, // Cyan

	Surface: lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#1A1A1A"}, // Light gray / Dark gray
	Overlay: lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#2D2D2D"}, // Medium gray

	Text:          lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#E5E5E5"},
	TextMuted:     lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#6B6B6B"},
	TextHighlight: lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
	TextInverse:   lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#000000"},

	Success: lipgloss.AdaptiveColor{Light: "#008000", Dark: "#00FF41"}, // Green
	Warning: lipgloss.AdaptiveColor{Light: "#CC5500", Dark: "#FF6B35"}, // Orange
	Error:   lipgloss.AdaptiveColor{Light: "#CC0033", Dark: "#FF0040"}, // Red
	Info:    lipgloss.AdaptiveColor{Light: "#0088CC", Dark: "#00D4FF"}, // Blue / Cyan
}

// Current is the active theme.
var Current = DefaultTheme

// ModeColor returns the badge color for a mode name as shown in the
// status bar.
func ModeColor(mode string) lipgloss.AdaptiveColor {
	switch mode {
	case "DETAIL":
		return Current.Success
	case "HELP":
		return Current.Secondary
	case "INSTALL":
		return Current.Accent
	default:
		return Current.Primary
	}
}
