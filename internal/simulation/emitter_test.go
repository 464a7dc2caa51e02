package simulation

import (
	"errors"
	"math"
	"testing"

	"chosenoffset.com/raybounce/internal/core/geometry"
)

func TestEmitAngles(t *testing.T) {
	origin := geometry.Point{X: 950, Y: 50}
	rays, err := Emit(origin, 90, 1000)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	wantAngles := []float64{0, 90, 180, 270}
	if len(rays) != len(wantAngles) {
		t.Fatalf("Expected %d rays, got %d", len(wantAngles), len(rays))
	}
	for i, r := range rays {
		if r.Angle != wantAngles[i] {
			t.Errorf("Ray %d: expected angle %v, got %v", i, wantAngles[i], r.Angle)
		}
		if r.Thickness != 1 || r.Reflected || r.Bounce != 0 || r.Hit != nil {
			t.Errorf("Ray %d: expected a fresh primary ray, got %+v", i, r)
		}
		if r.CastLength != 1000 {
			t.Errorf("Ray %d: expected cast length 1000, got %v", i, r.CastLength)
		}
		if d := geometry.Distance(origin, r.Origin); math.Abs(d-SpawnOffset) > 1e-12 {
			t.Errorf("Ray %d: expected origin %v from the pointer, got %v", i, SpawnOffset, d)
		}
	}

	// 270 points down the screen, so its origin sits below the pointer
	if math.Abs(rays[3].Origin.Y-56) > 1e-12 {
		t.Errorf("Expected the downward ray to start at y=56, got %v", rays[3].Origin.Y)
	}
}

func TestEmitCount(t *testing.T) {
	tests := []struct {
		density float64
		want    int
	}{
		{90, 4},
		{100, 4},
		{360, 1},
		{500, 1},
		{1, 360},
		{7, 52},
	}
	for _, tt := range tests {
		rays, err := Emit(geometry.Point{}, tt.density, 10)
		if err != nil {
			t.Fatalf("Density %v: unexpected error: %v", tt.density, err)
		}
		if len(rays) != tt.want {
			t.Errorf("Density %v: expected %d rays, got %d", tt.density, tt.want, len(rays))
		}
	}
}

func TestEmitInvalidDensity(t *testing.T) {
	for _, d := range []float64{0, -5, math.NaN(), math.Inf(1), 1e-9} {
		if _, err := Emit(geometry.Point{}, d, 10); !errors.Is(err, ErrInvalidDensity) {
			t.Errorf("Density %v: expected ErrInvalidDensity, got %v", d, err)
		}
	}
}
