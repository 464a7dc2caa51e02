// Package lighting maps simulation output to stroke colors.
package lighting

import (
	"fmt"
	"image/color"

	"chosenoffset.com/raybounce/internal/simulation"
)

// Palette holds the colors used to draw one frame
type Palette struct {
	Background color.NRGBA
	Boundary   color.NRGBA
	Primary    color.NRGBA
	Reflected  color.NRGBA
	Origin     color.NRGBA
}

// DefaultPalette returns the dark background, white walls and warm rays look
func DefaultPalette() Palette {
	return Palette{
		Background: color.NRGBA{0x16, 0x16, 0x16, 0xff},
		Boundary:   color.NRGBA{0xff, 0xff, 0xff, 0xff},
		Primary:    color.NRGBA{0xff, 0xf0, 0xc8, 0xff},
		Reflected:  color.NRGBA{0xff, 0xc8, 0x64, 0xff},
		Origin:     color.NRGBA{0xff, 0xff, 0xff, 0xff},
	}
}

// ParseHex parses a color in "RRGGBB" or "#RRGGBB" form
func ParseHex(s string) (color.NRGBA, error) {
	if len(s) == 7 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("color %q: expected RRGGBB", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.NRGBA{r, g, b, 0xff}, nil
}

// Apply overrides palette entries from config hex strings. Empty strings keep the current color.
func (p *Palette) Apply(cfg simulation.ColorConfig) error {
	entries := []struct {
		hex string
		dst *color.NRGBA
	}{
		{cfg.Background, &p.Background},
		{cfg.Boundary, &p.Boundary},
		{cfg.Primary, &p.Primary},
		{cfg.Reflected, &p.Reflected},
	}
	for _, e := range entries {
		if e.hex == "" {
			continue
		}
		c, err := ParseHex(e.hex)
		if err != nil {
			return err
		}
		*e.dst = c
	}
	return nil
}

// ColorFor returns the stroke color of a segment. Ray alpha follows thickness,
// so faded reflections draw dimmer as well as thinner.
func (p Palette) ColorFor(seg simulation.DrawSegment) color.NRGBA {
	switch seg.Kind {
	case simulation.KindBoundary:
		return p.Boundary
	case simulation.KindPrimaryRay:
		return withIntensity(p.Primary, seg.Width)
	default:
		return withIntensity(p.Reflected, seg.Width)
	}
}

func withIntensity(c color.NRGBA, intensity float64) color.NRGBA {
	if intensity > 1 {
		intensity = 1
	}
	if intensity < 0 {
		intensity = 0
	}
	c.A = uint8(float64(c.A) * intensity)
	return c
}
