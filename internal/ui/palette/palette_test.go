package palette

import (
	"testing"

	"inkwell/internal/theme"
)

func TestForMode(t *testing.T) {
	if got := ForMode(theme.Light).Name; got != "light" {
		t.Fatalf("ForMode(Light).Name = %q, want light", got)
	}
	if got := ForMode(theme.Dark).Name; got != "dark" {
		t.Fatalf("ForMode(Dark).Name = %q, want dark", got)
	}
}

func TestSetAndCurrent(t *testing.T) {
	t.Cleanup(func() { Set(theme.Light) })

	Set(theme.Dark)
	if got := Current().Name; got != "dark" {
		t.Fatalf("Current().Name = %q, want dark", got)
	}
	Set(theme.Light)
	if got := Current().Name; got != "light" {
		t.Fatalf("Current().Name = %q, want light", got)
	}
}

func TestGlamourStyle(t *testing.T) {
	if got := Light().GlamourStyle(); got != "light" {
		t.Fatalf("light glamour style = %q", got)
	}
	if got := Dark().GlamourStyle(); got != "dark" {
		t.Fatalf("dark glamour style = %q", got)
	}
}

func TestPalettesDiffer(t *testing.T) {
	l, d := Light(), Dark()
	if l.Background == d.Background || l.Text == d.Text {
		t.Fatal("light and dark palettes should not share base colors")
	}
}
