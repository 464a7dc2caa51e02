package reflection

import "chosenoffset.com/raybounce/internal/core/geometry"

// Quadrant classifies where a ray's origin sits relative to its hit point.
// "Above" means a smaller Y, since scene space grows downward.
type Quadrant int

const (
	// QuadrantUnresolved means origin and hit share an X or Y coordinate
	QuadrantUnresolved Quadrant = iota
	Q1                          // origin right of and above the hit
	Q2                          // origin left of and above the hit
	Q3                          // origin left of and below the hit
	Q4                          // origin right of and below the hit
)

// String returns a short label for logs and test output
func (q Quadrant) String() string {
	switch q {
	case Q1:
		return "Q1"
	case Q2:
		return "Q2"
	case Q3:
		return "Q3"
	case Q4:
		return "Q4"
	default:
		return "unresolved"
	}
}

// Classify returns the quadrant of origin relative to hit
func Classify(origin, hit geometry.Point) Quadrant {
	switch {
	case origin.X > hit.X && origin.Y < hit.Y:
		return Q1
	case origin.X < hit.X && origin.Y < hit.Y:
		return Q2
	case origin.X < hit.X && origin.Y > hit.Y:
		return Q3
	case origin.X > hit.X && origin.Y > hit.Y:
		return Q4
	default:
		return QuadrantUnresolved
	}
}

// correction adjusts a raw reflection angle for one quadrant
type correction func(angle float64) float64

func none(angle float64) float64 { return angle }

func mirrorBelow180(angle float64) float64 {
	if angle < 180 {
		return 360 - angle
	}
	return angle
}

func mirrorAbove180(angle float64) float64 {
	if angle > 180 {
		return 360 - angle
	}
	return angle
}

// corrections is the per-quadrant rule table. Unresolved has no entry.
var corrections = map[Quadrant]correction{
	Q1: none,
	Q2: mirrorBelow180,
	Q3: none,
	Q4: mirrorAbove180,
}
