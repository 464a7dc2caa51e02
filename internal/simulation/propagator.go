package simulation

import (
	"chosenoffset.com/raybounce/internal/core/geometry"
	"chosenoffset.com/raybounce/internal/core/reflection"
)

// SegmentKind tags a drawable segment for the renderer
type SegmentKind int

const (
	KindBoundary SegmentKind = iota
	KindPrimaryRay
	KindReflectedRay
)

// String returns the kind's name
func (k SegmentKind) String() string {
	switch k {
	case KindBoundary:
		return "boundary"
	case KindPrimaryRay:
		return "primary"
	case KindReflectedRay:
		return "reflected"
	default:
		return "unknown"
	}
}

// DrawSegment is one line the renderer should stroke
type DrawSegment struct {
	Kind       SegmentKind
	Start, End geometry.Point
	Width      float64
}

// Result is the outcome of one full pass
type Result struct {
	Segments  []DrawSegment
	Rays      int // Rays resolved, primary and reflected
	Hits      int // Rays that struck a boundary
	Fallbacks int // Reflections that used the unresolved-quadrant fallback
	Capped    int // Chains cut short by the bounce cap rather than decay
}

// Propagator expands primary rays into their full reflection chains
type Propagator struct {
	Boundaries []geometry.Boundary
	MaxBounces int
}

// NewPropagator creates a propagator over a fixed boundary set.
// A maxBounces <= 0 uses DefaultMaxBounces.
func NewPropagator(boundaries []geometry.Boundary, maxBounces int) *Propagator {
	if maxBounces <= 0 {
		maxBounces = DefaultMaxBounces
	}
	return &Propagator{Boundaries: boundaries, MaxBounces: maxBounces}
}

// Propagate resolves every ray in FIFO order, queueing the reflections they spawn,
// and appends one segment per resolved ray to res.
func (p *Propagator) Propagate(primaries []Ray, res *Result) {
	queue := make([]Ray, len(primaries), len(primaries)*2)
	copy(queue, primaries)

	for len(queue) > 0 {
		ray := queue[0]
		queue = queue[1:]

		child, ok := p.resolve(&ray, res)
		res.Segments = append(res.Segments, ray.segment())
		if ok {
			queue = append(queue, child)
		}
	}
}

// resolve finds the ray's closest hit and builds the child it spawns, if any
func (p *Propagator) resolve(ray *Ray, res *Result) (Ray, bool) {
	res.Rays++

	hit, ok := geometry.ClosestHit(ray.Origin, ray.End(), p.Boundaries)
	if !ok {
		return Ray{}, false
	}
	ray.Hit = &hit
	res.Hits++

	thickness := Decay(ray.Thickness)
	if thickness <= MinThickness {
		return Ray{}, false
	}
	if ray.Bounce >= p.MaxBounces {
		res.Capped++
		return Ray{}, false
	}

	refl := reflection.Reflect(ray.Origin, hit.Point, p.Boundaries[hit.Boundary].Segment)
	if refl.Fallback {
		res.Fallbacks++
	}

	return Ray{
		Origin:     hit.Point.Plus(Dislocation(ray.Origin, hit.Point)),
		Angle:      refl.Angle,
		CastLength: ray.CastLength,
		Thickness:  thickness,
		Reflected:  true,
		Bounce:     ray.Bounce + 1,
	}, true
}

func (r Ray) segment() DrawSegment {
	kind := KindPrimaryRay
	if r.Reflected {
		kind = KindReflectedRay
	}
	return DrawSegment{Kind: kind, Start: r.Origin, End: r.DrawEnd(), Width: r.Thickness}
}
