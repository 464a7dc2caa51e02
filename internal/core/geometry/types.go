package geometry

import (
	"errors"
	"math"

	"github.com/jbeda/geom"
)

// Point represents a 2D point in scene space (y grows downward)
type Point = geom.Coord

// Rect is an axis-aligned box in scene space
type Rect = geom.Rect

// DefaultBoundaryThickness is the stroke width given to boundaries when none is specified
const DefaultBoundaryThickness = 12.0

var (
	// ErrZeroLengthBoundary is returned when a boundary's endpoints coincide
	ErrZeroLengthBoundary = errors.New("boundary has zero length")
	// ErrNonFinite is returned when a coordinate is NaN or infinite
	ErrNonFinite = errors.New("non-finite coordinate")
)

// Segment is a directed line segment from Start to End
type Segment struct {
	Start, End Point
}

// Angle returns the direction of the segment in degrees, normalized to [0, 360)
func (s Segment) Angle() float64 {
	return NormalizeDegrees(Degrees(math.Atan2(s.End.Y-s.Start.Y, s.End.X-s.Start.X)))
}

// Length returns the Euclidean length of the segment
func (s Segment) Length() float64 {
	return Distance(s.Start, s.End)
}

// Boundary is an opaque wall that rays strike but cannot pass through
type Boundary struct {
	Segment
	Thickness float64 // Stroke width used by the renderer
}

// NewBoundary validates the endpoints and builds a boundary.
// A thickness <= 0 falls back to DefaultBoundaryThickness.
func NewBoundary(start, end Point, thickness float64) (Boundary, error) {
	if !IsFinite(start) || !IsFinite(end) {
		return Boundary{}, ErrNonFinite
	}
	if start == end {
		return Boundary{}, ErrZeroLengthBoundary
	}
	if thickness <= 0 {
		thickness = DefaultBoundaryThickness
	}
	return Boundary{Segment: Segment{Start: start, End: end}, Thickness: thickness}, nil
}

// Validate reports whether a boundary built without NewBoundary is usable
func (b Boundary) Validate() error {
	if !IsFinite(b.Start) || !IsFinite(b.End) {
		return ErrNonFinite
	}
	if b.Start == b.End {
		return ErrZeroLengthBoundary
	}
	return nil
}
