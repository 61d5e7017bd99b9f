// Package palette provides the semantic color sets for the reader UI,
// one per theme mode.
package palette

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"inkwell/internal/theme"
)

// Palette defines the semantic colors the views render with.
type Palette struct {
	Name string

	// Base colors
	Background lipgloss.Color // page background
	Surface    lipgloss.Color // panes, elevated surfaces
	Text       lipgloss.Color // primary text
	TextMuted  lipgloss.Color // de-emphasized text

	// Accent colors
	Primary lipgloss.Color // header background, focused borders
	Accent  lipgloss.Color // highlights, active toggle
	Border  lipgloss.Color // pane borders
}

// Light is the palette for the light theme mode.
func Light() Palette {
	return Palette{
		Name:       "light",
		Background: lipgloss.Color("#fdfdf8"),
		Surface:    lipgloss.Color("#efefe6"),
		Text:       lipgloss.Color("#2a2a26"),
		TextMuted:  lipgloss.Color("#73736b"),
		Primary:    lipgloss.Color("#3a5fa8"),
		Accent:     lipgloss.Color("#a85a2a"),
		Border:     lipgloss.Color("#c9c9bd"),
	}
}

// Dark is the palette for the dark theme mode.
func Dark() Palette {
	return Palette{
		Name:       "dark",
		Background: lipgloss.Color("#15161c"),
		Surface:    lipgloss.Color("#22242e"),
		Text:       lipgloss.Color("#d4d6e0"),
		TextMuted:  lipgloss.Color("#7c7f8f"),
		Primary:    lipgloss.Color("#7da3e0"),
		Accent:     lipgloss.Color("#e0a070"),
		Border:     lipgloss.Color("#3a3d4d"),
	}
}

// ForMode maps a theme mode to its palette.
func ForMode(m theme.Mode) Palette {
	if m == theme.Dark {
		return Dark()
	}
	return Light()
}

var (
	mu      sync.RWMutex
	current = Light()
)

// Set switches the active palette to the one for the given mode.
func Set(m theme.Mode) {
	mu.Lock()
	defer mu.Unlock()
	current = ForMode(m)
}

// Current returns the active palette.
func Current() Palette {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// GlamourStyle returns the standard glamour style name for the palette.
func (p Palette) GlamourStyle() string {
	if p.Name == "dark" {
		return "dark"
	}
	return "light"
}
