// Package lipgloss renders passages and the table of contents using the
// Lipgloss styling library.
package lipgloss

import (
	"fmt"
	"strings"

	"github.com/kyle-silver/lear"
)

// Compile-time interface verification.
var _ lear.Theme = (*Theme)(nil)

// Theme implements lear.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles lear.Styles
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() lear.Styles {
	return t.styles
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// ThemeByName returns the theme called name: "dark", "light" or "plain".
func ThemeByName(name string) (*Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dark":
		return DarkTheme(), nil
	case "light":
		return LightTheme(), nil
	case "plain":
		return PlainTheme(), nil
	default:
		return nil, fmt.Errorf("unknown theme %q", name)
	}
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		styles: lear.Styles{
			Heading: lear.ColorPair{
				Foreground: "#f9e2af", // Yellow
			},
			Setting: lear.ColorPair{
				Foreground: "#a6adc8", // Subtext
			},
			Staging: lear.ColorPair{
				Foreground: "#89b4fa", // Blue
			},
			Character: lear.ColorPair{
				Foreground: "#f38ba8", // Red
			},
			Text: lear.ColorPair{
				Foreground: "#cdd6f4", // Text
			},
			Direction: lear.ColorPair{
				Foreground: "#89b4fa", // Blue
			},
			Citation: lear.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			Rule: lear.ColorPair{
				Foreground: "#45475a", // Muted gray (subtle)
			},
			StatusBar: lear.ColorPair{
				Foreground: "#a6adc8",
				Background: "#313244", // Dark surface
			},
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: lear.Styles{
			Heading: lear.ColorPair{
				Foreground: "#df8e1d", // Yellow
			},
			Setting: lear.ColorPair{
				Foreground: "#6c6f85", // Subtext
			},
			Staging: lear.ColorPair{
				Foreground: "#1e66f5", // Blue
			},
			Character: lear.ColorPair{
				Foreground: "#d20f39", // Red
			},
			Text: lear.ColorPair{
				Foreground: "#4c4f69", // Text
			},
			Direction: lear.ColorPair{
				Foreground: "#1e66f5", // Blue
			},
			Citation: lear.ColorPair{
				Foreground: "#9ca0b0", // Muted gray
			},
			Rule: lear.ColorPair{
				Foreground: "#bcc0cc", // Muted gray (subtle for light)
			},
			StatusBar: lear.ColorPair{
				Foreground: "#6c6f85",
				Background: "#e6e9ef", // Light surface
			},
		},
	}
}

// PlainTheme returns a theme with no colors; bold and italic still apply.
func PlainTheme() *Theme {
	return &Theme{}
}
