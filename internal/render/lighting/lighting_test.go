package lighting

import (
	"image/color"
	"testing"

	"chosenoffset.com/raybounce/internal/simulation"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff8000")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c != (color.NRGBA{0xff, 0x80, 0x00, 0xff}) {
		t.Errorf("Expected ff8000, got %v", c)
	}
	if _, err := ParseHex("12345"); err == nil {
		t.Error("Expected an error for a short color")
	}
	if _, err := ParseHex("zzzzzz"); err == nil {
		t.Error("Expected an error for non-hex digits")
	}
}

func TestPaletteApply(t *testing.T) {
	p := DefaultPalette()
	if err := p.Apply(simulation.ColorConfig{Boundary: "00ff00"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if p.Boundary != (color.NRGBA{0, 0xff, 0, 0xff}) {
		t.Errorf("Expected a green boundary, got %v", p.Boundary)
	}
	if p.Background != DefaultPalette().Background {
		t.Error("Expected unset colors to keep their defaults")
	}
	if err := p.Apply(simulation.ColorConfig{Primary: "bad"}); err == nil {
		t.Error("Expected an error for a malformed color")
	}
}

func TestColorForFadesRays(t *testing.T) {
	p := DefaultPalette()

	wall := p.ColorFor(simulation.DrawSegment{Kind: simulation.KindBoundary, Width: 12})
	if wall != p.Boundary {
		t.Errorf("Expected boundary color, got %v", wall)
	}

	full := p.ColorFor(simulation.DrawSegment{Kind: simulation.KindPrimaryRay, Width: 1})
	if full.A != 0xff {
		t.Errorf("Expected a full-strength primary ray, got alpha %d", full.A)
	}

	faded := p.ColorFor(simulation.DrawSegment{Kind: simulation.KindReflectedRay, Width: 0.5})
	if faded.A != 127 {
		t.Errorf("Expected alpha 127 at half thickness, got %d", faded.A)
	}
}
