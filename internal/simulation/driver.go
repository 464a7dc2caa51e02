package simulation

import (
	"fmt"
	"sync"

	"chosenoffset.com/raybounce/internal/core/geometry"
)

// Options tune a recompute pass beyond its three core inputs
type Options struct {
	// Viewport is the visible extent. Cast length is twice the diagonal of the box
	// holding the viewport, every boundary and the origin.
	Viewport   geometry.Rect
	MaxBounces int
}

// Recompute runs one full pass: emit primary rays from origin every density degrees,
// propagate them through the boundaries and return the boundaries followed by every
// resolved ray segment. The same inputs always produce the same output, in the same order.
func Recompute(origin geometry.Point, boundaries []geometry.Boundary, density float64, opts Options) (*Result, error) {
	if !geometry.IsFinite(origin) {
		return nil, fmt.Errorf("origin (%v, %v): %w", origin.X, origin.Y, geometry.ErrNonFinite)
	}
	for i, b := range boundaries {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("boundary %d: %w", i, err)
		}
	}
	if !geometry.IsFinite(opts.Viewport.Min) || !geometry.IsFinite(opts.Viewport.Max) {
		return nil, fmt.Errorf("viewport: %w", ErrInvalidViewport)
	}

	castLength := CastLength(origin, boundaries, opts.Viewport)
	primaries, err := Emit(origin, density, castLength)
	if err != nil {
		return nil, err
	}

	res := &Result{Segments: make([]DrawSegment, 0, len(boundaries)+len(primaries)*2)}
	for _, b := range boundaries {
		res.Segments = append(res.Segments, DrawSegment{
			Kind:  KindBoundary,
			Start: b.Start,
			End:   b.End,
			Width: b.Thickness,
		})
	}

	NewPropagator(boundaries, opts.MaxBounces).Propagate(primaries, res)
	return res, nil
}

// CastLength returns twice the diagonal of the box containing the viewport, the
// boundaries and the origin, so every boundary in the scene is within reach
func CastLength(origin geometry.Point, boundaries []geometry.Boundary, viewport geometry.Rect) float64 {
	box := geometry.BoundsOf(origin, boundaries)
	box.ExpandToContainCoord(viewport.Min)
	box.ExpandToContainCoord(viewport.Max)
	return 2 * geometry.Diagonal(box)
}

// State is the driver's snapshot of the scene and its most recent result
type State struct {
	Boundaries []geometry.Boundary
	Origin     geometry.Point
	Density    float64
	Viewport   geometry.Rect
	Result     *Result
}

// Driver owns the simulation state and serializes recompute passes.
// Setters only record new inputs; Flush runs at most one pass with the latest of them.
type Driver struct {
	mu         sync.Mutex
	state      State
	maxBounces int
	dirty      bool
	err        error // Failure of the last pass, held until an input changes
	passes     int
}

// NewDriver creates a driver with an empty scene over a width x height viewport
func NewDriver(density float64, width, height float64, maxBounces int) *Driver {
	return &Driver{
		state: State{
			Density:  density,
			Viewport: geometry.Rect{Max: geometry.Point{X: width, Y: height}},
		},
		maxBounces: maxBounces,
		dirty:      true,
	}
}

// SetOrigin moves the light source
func (d *Driver) SetOrigin(p geometry.Point) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if p == d.state.Origin {
		return
	}
	d.state.Origin = p
	d.dirty = true
}

// SetDensity changes the angular step between primary rays
func (d *Driver) SetDensity(density float64) error {
	if err := validDensity(density); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if density == d.state.Density {
		return nil
	}
	d.state.Density = density
	d.dirty = true
	return nil
}

// ReplaceBoundaries swaps in a whole new boundary set
func (d *Driver) ReplaceBoundaries(boundaries []geometry.Boundary) error {
	for i, b := range boundaries {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("boundary %d: %w", i, err)
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.state.Boundaries = append([]geometry.Boundary(nil), boundaries...)
	d.dirty = true
	return nil
}

// SetViewport resizes the visible extent
func (d *Driver) SetViewport(width, height float64) error {
	if !(width > 0) || !(height > 0) || !geometry.IsFinite(geometry.Point{X: width, Y: height}) {
		return fmt.Errorf("viewport %vx%v: %w", width, height, ErrInvalidViewport)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	vp := geometry.Rect{Max: geometry.Point{X: width, Y: height}}
	if vp == d.state.Viewport {
		return nil
	}
	d.state.Viewport = vp
	d.dirty = true
	return nil
}

// Flush recomputes if any input changed since the last pass and returns the current result.
// Any number of changes between flushes coalesce into a single pass.
// A failed pass keeps reporting its error until one of the setters changes an input.
func (d *Driver) Flush() (*Result, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.dirty {
		if d.err != nil {
			return nil, d.err
		}
		if d.state.Result != nil {
			return d.state.Result, nil
		}
	}

	res, err := Recompute(d.state.Origin, d.state.Boundaries, d.state.Density, Options{
		Viewport:   d.state.Viewport,
		MaxBounces: d.maxBounces,
	})
	d.dirty = false
	d.err = err
	if err != nil {
		return nil, err
	}
	d.state.Result = res
	d.passes++
	return res, nil
}

// Snapshot returns a copy of the current state
func (d *Driver) Snapshot() State {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := d.state
	s.Boundaries = append([]geometry.Boundary(nil), d.state.Boundaries...)
	return s
}

// Passes returns how many recompute passes have completed
func (d *Driver) Passes() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.passes
}
