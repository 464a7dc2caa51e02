// Package reflection derives the outgoing angle of a ray bouncing off a boundary.
//
// The formula is a tuned heuristic: for a wall
// angle W and an incident angle I it yields W + 180 - (W - I), then applies a
// quadrant correction. It is not a mirror reflection about the wall.
package reflection

import (
	"math"

	"chosenoffset.com/raybounce/internal/core/geometry"
)

// Reflection is the result of bouncing a ray off a wall
type Reflection struct {
	Angle    float64  // Outgoing cast angle in degrees, [0, 360)
	Quadrant Quadrant // Classification of origin relative to hit
	Fallback bool     // True when the quadrant was unresolved and Angle is the retro-reflection
}

// IncidentAngle is atan2 of the vector from origin to hit, in degrees within [0, 360).
// It reads Y as stored (downward), unlike geometry.CastAngle.
func IncidentAngle(origin, hit geometry.Point) float64 {
	return geometry.NormalizeDegrees(geometry.Degrees(math.Atan2(hit.Y-origin.Y, hit.X-origin.X)))
}

// RawAngle applies the reflection formula before quadrant correction
func RawAngle(incident, wall float64) float64 {
	return geometry.NormalizeDegrees(wall + 180 - (wall - incident))
}

// Reflect computes the angle at which a ray travelling from origin to hit leaves wall.
// When origin and hit share a coordinate the quadrant cannot be classified; the ray
// is then sent straight back the way it came and Fallback is set.
func Reflect(origin, hit geometry.Point, wall geometry.Segment) Reflection {
	q := Classify(origin, hit)
	fix, ok := corrections[q]
	if !ok {
		return Reflection{
			Angle:    geometry.NormalizeDegrees(geometry.CastAngle(origin, hit) + 180),
			Quadrant: q,
			Fallback: true,
		}
	}

	angle := RawAngle(IncidentAngle(origin, hit), wall.Angle())
	return Reflection{Angle: fix(angle), Quadrant: q}
}
