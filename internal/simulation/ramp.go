package simulation

import (
	"math"
	"time"
)

// RampDirection says which way the density step is moving
type RampDirection int

const (
	RampIdle RampDirection = iota
	RampDown               // Step shrinks toward Min, more rays
	RampUp                 // Step grows back toward the default, fewer rays
)

// Ramp moves the density step at a fixed rate while a direction is active.
// Only one direction exists at a time, so starting one cancels the other.
type Ramp struct {
	density  float64
	min      float64
	max      float64
	target   float64 // Where RampUp settles: the default step clamped to max
	step     float64
	interval time.Duration

	direction RampDirection
	elapsed   time.Duration
}

// NewRamp creates an idle ramp from the density settings
func NewRamp(cfg DensityConfig) *Ramp {
	return &Ramp{
		density:  cfg.Default,
		min:      cfg.Min,
		max:      cfg.Max,
		target:   math.Min(cfg.Default, cfg.Max),
		step:     cfg.RampStep,
		interval: cfg.RampInterval(),
	}
}

// Density returns the current step in degrees
func (r *Ramp) Density() float64 {
	return r.density
}

// Direction returns the active direction
func (r *Ramp) Direction() RampDirection {
	return r.direction
}

// StartDecrease begins shrinking the step, replacing any ramp in progress
func (r *Ramp) StartDecrease() {
	r.start(RampDown)
}

// StartIncrease begins growing the step back to the default, replacing any ramp in progress
func (r *Ramp) StartIncrease() {
	r.start(RampUp)
}

// Stop halts the ramp where it is
func (r *Ramp) Stop() {
	r.direction = RampIdle
	r.elapsed = 0
}

func (r *Ramp) start(dir RampDirection) {
	if r.direction == dir {
		return
	}
	r.direction = dir
	r.elapsed = 0
}

// Advance moves time forward by dt, applying one step per elapsed interval.
// It reports whether the density changed. The ramp stops itself at min going down
// and at the default going up.
func (r *Ramp) Advance(dt time.Duration) bool {
	if r.direction == RampIdle || r.interval <= 0 {
		return false
	}

	r.elapsed += dt
	changed := false
	for r.elapsed >= r.interval && r.direction != RampIdle {
		r.elapsed -= r.interval
		changed = r.tick() || changed
	}
	return changed
}

// tick applies a single step and clamps to [min, target]
func (r *Ramp) tick() bool {
	prev := r.density
	switch r.direction {
	case RampDown:
		r.density = math.Max(r.min, r.density-r.step)
		if r.density <= r.min {
			r.Stop()
		}
	case RampUp:
		r.density = math.Min(r.target, r.density+r.step)
		if r.density >= r.target {
			r.Stop()
		}
	}
	return r.density != prev
}
