package theme

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		marker string
		want   Mode
	}{
		{"dark", Dark},
		{"light", Light},
		{"", Light},
		// Only the exact lowercase marker counts.
		{"Dark", Light},
		{"DARK", Light},
		{"midnight", Light},
	}
	for _, tc := range cases {
		if got := Parse(tc.marker); got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.marker, got, tc.want)
		}
	}
}

func TestModeString(t *testing.T) {
	if Light.String() != "light" || Dark.String() != "dark" {
		t.Fatalf("markers = %q/%q, want light/dark", Light.String(), Dark.String())
	}
}

func TestModeLabel(t *testing.T) {
	if Light.Label() != "Light" || Dark.Label() != "Dark" {
		t.Fatalf("labels = %q/%q, want Light/Dark", Light.Label(), Dark.Label())
	}
}

func TestToggleAlternates(t *testing.T) {
	if Light.Toggle() != Dark {
		t.Fatal("Light.Toggle() should be Dark")
	}
	if Dark.Toggle() != Light {
		t.Fatal("Dark.Toggle() should be Light")
	}
	// Two toggles return to the original mode; they never cancel out to
	// some third state.
	if got := Light.Toggle().Toggle(); got != Light {
		t.Fatalf("double toggle = %v, want Light", got)
	}
}
