package geometry

import "math"

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	return a.DistanceFrom(b)
}

// Degrees converts radians to degrees
func Degrees(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// NormalizeDegrees maps an angle in degrees into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	n := math.Mod(deg+360, 360)
	if n < 0 {
		n += 360
	}
	return n
}

// Direction returns the unit cast vector for an angle in degrees.
// 0 points right, 90 points up the screen, 270 points down.
func Direction(deg float64) Point {
	rad := Radians(deg)
	return Point{X: math.Cos(rad), Y: -math.Sin(rad)}
}

// CastAngle returns the cast angle (inverse of Direction) of the vector from a to b
func CastAngle(a, b Point) float64 {
	return NormalizeDegrees(Degrees(math.Atan2(-(b.Y - a.Y), b.X-a.X)))
}

// IsFinite reports whether both coordinates are neither NaN nor infinite
func IsFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Diagonal returns the length of a rectangle's diagonal
func Diagonal(r Rect) float64 {
	return math.Hypot(r.Width(), r.Height())
}

// BoundsOf returns the smallest rectangle containing every boundary endpoint
// together with the given seed point
func BoundsOf(seed Point, boundaries []Boundary) Rect {
	r := Rect{Min: seed, Max: seed}
	for _, b := range boundaries {
		r.ExpandToContainCoord(b.Start)
		r.ExpandToContainCoord(b.End)
	}
	return r
}
