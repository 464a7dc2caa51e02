package geometry

import "math"

// parallelEpsilon is the denominator magnitude below which two segments are treated as parallel
const parallelEpsilon = 1e-6

// Intersection describes where two segments cross
type Intersection struct {
	Point Point
	T     float64 // Parameter along the first segment
	U     float64 // Parameter along the second segment
}

// Hit is the nearest boundary struck by a ray
type Hit struct {
	Point    Point
	Distance float64 // Distance from the ray origin
	Boundary int     // Index into the boundary slice that produced the hit
}

// Intersect tests segment p1-p2 against segment p3-p4.
// Parallel and coincident segments never intersect, and touching exactly at an endpoint
// (t or u equal to 0 or 1) does not count.
func Intersect(p1, p2, p3, p4 Point) (Intersection, bool) {
	x1, y1 := p1.X, p1.Y
	x2, y2 := p2.X, p2.Y
	x3, y3 := p3.X, p3.Y
	x4, y4 := p4.X, p4.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if math.Abs(denom) < parallelEpsilon {
		return Intersection{}, false
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	u := ((x1-x3)*(y1-y2) - (y1-y3)*(x1-x2)) / denom

	if t > 0 && t < 1 && u > 0 && u < 1 {
		return Intersection{
			Point: Point{X: x1 + t*(x2-x1), Y: y1 + t*(y2-y1)},
			T:     t,
			U:     u,
		}, true
	}

	return Intersection{}, false
}

// ClosestHit casts the segment start-end against every boundary and returns the
// intersection nearest to start. Equal distances keep the earlier boundary.
func ClosestHit(start, end Point, boundaries []Boundary) (Hit, bool) {
	var closest Hit
	found := false

	for i, b := range boundaries {
		ix, ok := Intersect(start, end, b.Start, b.End)
		if !ok {
			continue
		}
		dist := Distance(start, ix.Point)
		if !found || dist < closest.Distance {
			closest = Hit{Point: ix.Point, Distance: dist, Boundary: i}
			found = true
		}
	}

	return closest, found
}
