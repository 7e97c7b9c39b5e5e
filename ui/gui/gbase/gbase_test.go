package gbase

import "testing"

func TestPaletteNames(t *testing.T) {
	for _, name := range []string{"light", "dark"} {
		if got := PaletteFromString(name).String(); got != name {
			t.Errorf("round trip %q -> %q", name, got)
		}
	}
	if PaletteFromString("neon") != LightPalette {
		t.Errorf("unknown theme should fall back to light")
	}
}

func TestPalettesFollowBoard(t *testing.T) {
	if LightPalette == DarkPalette {
		t.Fatalf("palettes are identical")
	}
	for _, p := range []Palette{LightPalette, DarkPalette} {
		if p.Accent != LabelColor {
			t.Errorf("%s accent = %v, want label orange", p, p.Accent)
		}
		if p.ButtonFill == p.ButtonText {
			t.Errorf("%s button text invisible on its fill", p)
		}
	}
	if (Palette{}).String() != "" {
		t.Errorf("unnamed palette has a name")
	}
}
