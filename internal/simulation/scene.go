package simulation

import (
	"fmt"
	"math/rand"

	"chosenoffset.com/raybounce/internal/core/geometry"
)

// maxRerolls bounds how often a degenerate random boundary is redrawn
const maxRerolls = 16

// Scene is the editable set of boundaries. Rays only ever read it.
type Scene struct {
	boundaries []geometry.Boundary
	thickness  float64
	rng        *rand.Rand
}

// NewScene creates an empty scene whose random boundaries come from seed
func NewScene(thickness float64, seed int64) *Scene {
	if thickness <= 0 {
		thickness = geometry.DefaultBoundaryThickness
	}
	return &Scene{
		thickness: thickness,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Add appends a boundary from start to end, rejecting zero-length and non-finite segments
func (s *Scene) Add(start, end geometry.Point) error {
	b, err := geometry.NewBoundary(start, end, s.thickness)
	if err != nil {
		return fmt.Errorf("add boundary (%v, %v)-(%v, %v): %w", start.X, start.Y, end.X, end.Y, err)
	}
	s.boundaries = append(s.boundaries, b)
	return nil
}

// Boundaries returns a copy of the boundary set in insertion order
func (s *Scene) Boundaries() []geometry.Boundary {
	return append([]geometry.Boundary(nil), s.boundaries...)
}

// Len returns the number of boundaries
func (s *Scene) Len() int {
	return len(s.boundaries)
}

// Regenerate replaces the scene with n random boundaries whose endpoints lie
// inside a width x height viewport
func (s *Scene) Regenerate(n int, width, height float64) error {
	if !(width > 0) || !(height > 0) {
		return fmt.Errorf("regenerate in %vx%v: %w", width, height, ErrInvalidViewport)
	}

	fresh := make([]geometry.Boundary, 0, n)
	for i := 0; i < n; i++ {
		b, err := s.randomBoundary(width, height)
		if err != nil {
			return fmt.Errorf("regenerate boundary %d: %w", i, err)
		}
		fresh = append(fresh, b)
	}
	s.boundaries = fresh
	return nil
}

func (s *Scene) randomBoundary(width, height float64) (geometry.Boundary, error) {
	var err error
	for attempt := 0; attempt < maxRerolls; attempt++ {
		start := geometry.Point{X: s.rng.Float64() * width, Y: s.rng.Float64() * height}
		end := geometry.Point{X: s.rng.Float64() * width, Y: s.rng.Float64() * height}

		var b geometry.Boundary
		b, err = geometry.NewBoundary(start, end, s.thickness)
		if err == nil {
			return b, nil
		}
	}
	return geometry.Boundary{}, err
}
