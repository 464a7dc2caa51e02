package simulation

import (
	"math"

	"chosenoffset.com/raybounce/internal/core/geometry"
)

const (
	// SpawnOffset is how far a primary ray starts from the pointer along its own direction
	SpawnOffset = 6.0
	// DecayFactor scales thickness on every bounce
	DecayFactor = 0.7
	// MinThickness is the thickness a child must exceed to be cast
	MinThickness = 0.05
	// DislocationX and DislocationY push a reflected ray's origin off the wall it just hit
	DislocationX = 6.0
	DislocationY = 2.0
	// DefaultMaxBounces caps reflection chains independently of thickness decay
	DefaultMaxBounces = 16
)

// Ray is a probe cast from Origin at Angle for CastLength
type Ray struct {
	Origin     geometry.Point
	Angle      float64 // Cast angle in degrees, [0, 360)
	CastLength float64
	Thickness  float64 // Energy proxy, also the stroke width
	Reflected  bool
	Bounce     int           // Reflections between the primary and this ray
	Hit        *geometry.Hit // Set once the ray has been resolved against the scene
}

// End returns the far end of the ray's full cast
func (r Ray) End() geometry.Point {
	return r.Origin.Plus(geometry.Direction(r.Angle).Times(r.CastLength))
}

// DrawEnd returns where the drawable segment stops: the hit point, or the full cast
func (r Ray) DrawEnd() geometry.Point {
	if r.Hit != nil {
		return r.Hit.Point
	}
	return r.End()
}

// Decay returns the thickness of a child ray: thickness*0.7 rounded to two decimals
func Decay(thickness float64) float64 {
	return math.Round(thickness*DecayFactor*100) / 100
}

// Dislocation returns the offset applied to a reflected ray's origin at hit.
// It points from the hit back toward the side the parent came from.
func Dislocation(origin, hit geometry.Point) geometry.Point {
	d := geometry.Point{X: DislocationX, Y: DislocationY}
	if origin.X < hit.X {
		d.X = -DislocationX
	}
	if origin.Y < hit.Y {
		d.Y = -DislocationY
	}
	return d
}
