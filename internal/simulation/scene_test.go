package simulation

import (
	"errors"
	"reflect"
	"testing"

	"chosenoffset.com/raybounce/internal/core/geometry"
)

func TestSceneAddRejectsZeroLength(t *testing.T) {
	s := NewScene(0, 1)
	err := s.Add(geometry.Point{X: 4, Y: 4}, geometry.Point{X: 4, Y: 4})
	if !errors.Is(err, geometry.ErrZeroLengthBoundary) {
		t.Fatalf("Expected ErrZeroLengthBoundary, got %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Expected the rejected boundary not to be stored, got %d boundaries", s.Len())
	}

	if err := s.Add(geometry.Point{X: 0, Y: 1100}, geometry.Point{X: 1900, Y: 1100}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	b := s.Boundaries()
	if len(b) != 1 || b[0].Thickness != geometry.DefaultBoundaryThickness {
		t.Errorf("Expected one boundary with default thickness, got %+v", b)
	}
}

func TestSceneBoundariesIsACopy(t *testing.T) {
	s := NewScene(3, 1)
	if err := s.Add(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 10, Y: 0}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	b := s.Boundaries()
	b[0].Thickness = 99
	if s.Boundaries()[0].Thickness != 3 {
		t.Error("Expected scene boundaries to be unaffected by edits to the returned slice")
	}
}

func TestSceneRegenerate(t *testing.T) {
	s := NewScene(12, 7)
	if err := s.Regenerate(25, 640, 480); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Len() != 25 {
		t.Fatalf("Expected 25 boundaries, got %d", s.Len())
	}
	for i, b := range s.Boundaries() {
		if err := b.Validate(); err != nil {
			t.Errorf("Boundary %d invalid: %v", i, err)
		}
		for _, p := range []geometry.Point{b.Start, b.End} {
			if p.X < 0 || p.X >= 640 || p.Y < 0 || p.Y >= 480 {
				t.Errorf("Boundary %d endpoint %v outside the viewport", i, p)
			}
		}
	}

	other := NewScene(12, 7)
	if err := other.Regenerate(25, 640, 480); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !reflect.DeepEqual(s.Boundaries(), other.Boundaries()) {
		t.Error("Expected the same seed to generate the same scene")
	}

	if err := s.Regenerate(2, 0, 480); !errors.Is(err, ErrInvalidViewport) {
		t.Errorf("Expected ErrInvalidViewport, got %v", err)
	}
	if s.Len() != 25 {
		t.Errorf("Expected a failed regenerate to keep the old scene, got %d boundaries", s.Len())
	}
}
