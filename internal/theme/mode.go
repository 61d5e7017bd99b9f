// Package theme holds the light/dark display preference state machine:
// one persisted mode, applied to the page root and mirrored by the
// desktop and mobile toggle controls.
package theme

// Mode is the display preference. Light is the zero value and the
// default whenever no valid preference is persisted.
type Mode int

const (
	Light Mode = iota
	Dark
)

// Persisted markers and the fixed storage key. Only the exact dark
// marker is ever interpreted as a saved dark preference.
const (
	StorageKey  = "theme"
	DarkMarker  = "dark"
	LightMarker = "light"
)

// String returns the persisted marker for the mode.
func (m Mode) String() string {
	if m == Dark {
		return DarkMarker
	}
	return LightMarker
}

// Label returns the short control label shown on the mobile toggle.
func (m Mode) Label() string {
	if m == Dark {
		return "Dark"
	}
	return "Light"
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Parse maps a persisted value to a Mode. Anything other than the exact
// dark marker, including the empty string, resolves to Light.
func Parse(marker string) Mode {
	if marker == DarkMarker {
		return Dark
	}
	return Light
}
