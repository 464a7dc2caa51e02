package simulation

import (
	"math"
	"testing"

	"chosenoffset.com/raybounce/internal/core/geometry"
)

func mustBoundary(t *testing.T, x1, y1, x2, y2 float64) geometry.Boundary {
	t.Helper()
	b, err := geometry.NewBoundary(geometry.Point{X: x1, Y: y1}, geometry.Point{X: x2, Y: y2}, 0)
	if err != nil {
		t.Fatalf("Failed to build boundary: %v", err)
	}
	return b
}

// corridor returns two long horizontal walls at y=0 and y=100
func corridor(t *testing.T) []geometry.Boundary {
	return []geometry.Boundary{
		mustBoundary(t, -1000, 100, 1000, 100),
		mustBoundary(t, -1000, 0, 1000, 0),
	}
}

func TestDecaySequence(t *testing.T) {
	want := []float64{0.7, 0.49, 0.34, 0.24, 0.17, 0.12, 0.08, 0.06, 0.04}
	thickness := 1.0
	for i, w := range want {
		thickness = Decay(thickness)
		if thickness != w {
			t.Fatalf("Bounce %d: expected thickness %v, got %v", i+1, w, thickness)
		}
	}
	if thickness > MinThickness {
		t.Errorf("Expected the sequence to end at or below %v, got %v", MinThickness, thickness)
	}
}

func TestDislocation(t *testing.T) {
	hit := geometry.Point{X: 10, Y: 10}
	tests := []struct {
		origin geometry.Point
		want   geometry.Point
	}{
		{geometry.Point{X: 0, Y: 0}, geometry.Point{X: -6, Y: -2}},
		{geometry.Point{X: 20, Y: 0}, geometry.Point{X: 6, Y: -2}},
		{geometry.Point{X: 0, Y: 20}, geometry.Point{X: -6, Y: 2}},
		{geometry.Point{X: 20, Y: 20}, geometry.Point{X: 6, Y: 2}},
		{geometry.Point{X: 10, Y: 10}, geometry.Point{X: 6, Y: 2}},
	}
	for _, tt := range tests {
		if got := Dislocation(tt.origin, hit); got != tt.want {
			t.Errorf("Dislocation(%v): expected %v, got %v", tt.origin, tt.want, got)
		}
	}
}

func TestPropagateChainEndsByDecay(t *testing.T) {
	p := NewPropagator(corridor(t), 0)
	primary := Ray{Origin: geometry.Point{X: 10, Y: 56}, Angle: 270, CastLength: 1000, Thickness: 1}

	var res Result
	p.Propagate([]Ray{primary}, &res)

	want := []float64{1, 0.7, 0.49, 0.34, 0.24, 0.17, 0.12, 0.08, 0.06}
	if len(res.Segments) != len(want) {
		t.Fatalf("Expected %d segments, got %d", len(want), len(res.Segments))
	}
	for i, seg := range res.Segments {
		if seg.Width != want[i] {
			t.Errorf("Segment %d: expected width %v, got %v", i, want[i], seg.Width)
		}
		wantKind := KindReflectedRay
		if i == 0 {
			wantKind = KindPrimaryRay
		}
		if seg.Kind != wantKind {
			t.Errorf("Segment %d: expected kind %v, got %v", i, wantKind, seg.Kind)
		}
	}
	if res.Rays != 9 || res.Hits != 9 {
		t.Errorf("Expected 9 rays and 9 hits, got %d rays and %d hits", res.Rays, res.Hits)
	}
	if res.Capped != 0 {
		t.Errorf("Expected no capped chains, got %d", res.Capped)
	}
}

func TestPropagateBounceCap(t *testing.T) {
	p := NewPropagator(corridor(t), 3)
	primary := Ray{Origin: geometry.Point{X: 10, Y: 56}, Angle: 270, CastLength: 1000, Thickness: 1}

	var res Result
	p.Propagate([]Ray{primary}, &res)

	if len(res.Segments) != 4 {
		t.Fatalf("Expected 4 segments under a cap of 3 bounces, got %d", len(res.Segments))
	}
	if res.Capped != 1 {
		t.Errorf("Expected 1 capped chain, got %d", res.Capped)
	}
}

func TestPropagateEscape(t *testing.T) {
	p := NewPropagator(nil, 0)
	rays, err := Emit(geometry.Point{X: 100, Y: 100}, 45, 500)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var res Result
	p.Propagate(rays, &res)

	if len(res.Segments) != 8 {
		t.Fatalf("Expected 8 segments, got %d", len(res.Segments))
	}
	for i, seg := range res.Segments {
		if seg.Kind != KindPrimaryRay {
			t.Errorf("Segment %d: expected a primary ray, got %v", i, seg.Kind)
		}
		if l := geometry.Distance(seg.Start, seg.End); math.Abs(l-500) > 1e-9 {
			t.Errorf("Segment %d: expected full cast length 500, got %v", i, l)
		}
	}
	if res.Hits != 0 {
		t.Errorf("Expected no hits in an empty scene, got %d", res.Hits)
	}
}

func TestPropagateChainBound(t *testing.T) {
	// Closed box around the origin, walls overlapping at the corners
	box := []geometry.Boundary{
		mustBoundary(t, -50, 0, 1050, 0),
		mustBoundary(t, 1000, -50, 1000, 1050),
		mustBoundary(t, 1050, 1000, -50, 1000),
		mustBoundary(t, 0, 1050, 0, -50),
	}
	rays, err := Emit(geometry.Point{X: 437, Y: 611}, 7.5, 4000)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var res Result
	NewPropagator(box, 0).Propagate(rays, &res)

	if res.Rays > 9*len(rays) {
		t.Errorf("Expected at most %d rays, got %d", 9*len(rays), res.Rays)
	}
	if res.Rays != len(res.Segments) {
		t.Errorf("Expected one segment per ray, got %d rays and %d segments", res.Rays, len(res.Segments))
	}
	for i, seg := range res.Segments {
		if seg.Width <= MinThickness {
			t.Errorf("Segment %d: width %v should never reach %v", i, seg.Width, MinThickness)
		}
	}
}
