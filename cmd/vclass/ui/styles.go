// Package ui renders the vclass terminal surface: the banner and menu
// chrome, bordered roster cards, and the blocking prompts the session
// reads answers from. All styling is cosmetic; under an Ascii color
// profile every render degrades to the same plain-text layout.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. The muted gray is the classic VCLASS console gray.
var (
	// Light mode colors (default)
	LightMuted   = lipgloss.Color("#6b7280") // neutral gray
	LightWarning = lipgloss.Color("#FFC107") // amber

	// Dark mode colors
	DarkMuted   = lipgloss.Color("#9ca3af") // lifted gray for dark backgrounds
	DarkWarning = lipgloss.Color("#FFC107") // amber
)

// Theme holds the current color scheme.
type Theme struct {
	Muted   lipgloss.Color
	Warning lipgloss.Color
	IsDark  bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Muted:   LightMuted,
		Warning: LightWarning,
		IsDark:  false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Muted:   DarkMuted,
		Warning: DarkWarning,
		IsDark:  true,
	}
}

// DetectTheme auto-detects based on terminal hints or returns light mode.
func DetectTheme() Theme {
	// COLORFGBG is usually "foreground;background"; ANSI backgrounds
	// 0-6 and 8 indicate a dark terminal.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	// Explicit dark mode preference
	if os.Getenv("VCLASS_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// Styles holds the styled components used by the Console.
type Styles struct {
	Theme Theme

	// Chrome
	Banner lipgloss.Style
	Menu   lipgloss.Style
	Muted  lipgloss.Style

	// Cards
	Border    lipgloss.Style
	CardTitle lipgloss.Style

	// Status
	Warning lipgloss.Style
}

// NewStyles creates a Styles instance bound to the given renderer, so the
// output device's color profile decides how much styling survives.
func NewStyles(r *lipgloss.Renderer, theme Theme) Styles {
	return Styles{
		Theme: theme,

		Banner: r.NewStyle().
			Bold(true),

		Menu: r.NewStyle().
			Foreground(theme.Muted),

		Muted: r.NewStyle().
			Foreground(theme.Muted),

		Border: r.NewStyle().
			Foreground(theme.Muted),

		CardTitle: r.NewStyle().
			Bold(true),

		Warning: r.NewStyle().
			Foreground(theme.Warning).
			Bold(true),
	}
}

// DefaultStyles creates styles on the process-wide renderer with the
// auto-detected theme.
func DefaultStyles() Styles {
	return NewStyles(lipgloss.DefaultRenderer(), DetectTheme())
}
