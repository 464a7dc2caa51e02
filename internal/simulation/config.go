// Package simulation casts rays from an origin into a scene of boundaries and
// follows their reflections until they escape or fade out.
// Tunables are loaded from a TOML file so a scene can be adjusted without rebuilding.
package simulation

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all tunables for the program
type Config struct {
	// Window setup
	Window WindowConfig `toml:"window"`

	// Angular density and its ramp
	Density DensityConfig `toml:"density"`

	// Scene regeneration rules
	Scene SceneConfig `toml:"scene"`

	// Propagation limits
	Propagation PropagationConfig `toml:"propagation"`

	// Stroke colors as RRGGBB hex; empty keeps the built-in palette
	Colors ColorConfig `toml:"colors"`
}

// WindowConfig defines the initial window
type WindowConfig struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	Resizable bool   `toml:"resizable"`
}

// DensityConfig defines the angular step between primary rays and how it ramps
type DensityConfig struct {
	Default        float64 `toml:"default"`          // Step in degrees when idle (e.g., 90)
	Min            float64 `toml:"min"`              // Smallest step the ramp reaches
	Max            float64 `toml:"max"`              // Largest step the ramp reaches
	RampStep       float64 `toml:"ramp_step"`        // Change per ramp tick
	RampIntervalMS int     `toml:"ramp_interval_ms"` // Time between ramp ticks
}

// SceneConfig defines how boundaries are generated
type SceneConfig struct {
	RandomBoundaries  int     `toml:"random_boundaries"`  // Boundaries per regenerate command
	BoundaryThickness float64 `toml:"boundary_thickness"` // Stroke width of walls
	Seed              int64   `toml:"seed"`               // 0 seeds from the clock

	// Initial boundaries; when empty the scene starts with RandomBoundaries random ones
	Boundaries []BoundaryConfig `toml:"boundaries"`
}

// BoundaryConfig is one boundary in the config file
type BoundaryConfig struct {
	X1 float64 `toml:"x1"`
	Y1 float64 `toml:"y1"`
	X2 float64 `toml:"x2"`
	Y2 float64 `toml:"y2"`
}

// PropagationConfig defines the safety limits on reflection chains
type PropagationConfig struct {
	MaxBounces int `toml:"max_bounces"` // Hard cap on reflections per primary ray
}

// ColorConfig overrides the renderer's palette
type ColorConfig struct {
	Background string `toml:"background"`
	Boundary   string `toml:"boundary"`
	Primary    string `toml:"primary"`
	Reflected  string `toml:"reflected"`
}

// DefaultConfig returns the stock demo settings
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    800,
			Title:     "raybounce",
			Resizable: true,
		},
		Density: DensityConfig{
			Default:        90,
			Min:            0.15,
			Max:            90,
			RampStep:       0.1,
			RampIntervalMS: 20,
		},
		Scene: SceneConfig{
			RandomBoundaries:  2,
			BoundaryThickness: 12,
			Seed:              0,
		},
		Propagation: PropagationConfig{
			MaxBounces: DefaultMaxBounces,
		},
	}
}

// LoadConfig loads config from a TOML file.
// Missing files yield the defaults; keys absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	if _, err := toml.DecodeFile(path, config); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks that the values can drive a simulation
func (c *Config) Validate() error {
	d := c.Density
	for _, v := range []float64{d.Default, d.Min, d.Max} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("density %v: %w", v, ErrInvalidDensity)
		}
	}
	if math.IsNaN(d.RampStep) || math.IsInf(d.RampStep, 0) {
		return fmt.Errorf("ramp step %v: %w", d.RampStep, ErrInvalidRamp)
	}
	if d.Min <= 0 || d.Max < d.Min {
		return fmt.Errorf("density range [%v, %v]: %w", d.Min, d.Max, ErrInvalidDensity)
	}
	if d.Default < d.Min || d.Default > d.Max {
		return fmt.Errorf("default density %v outside [%v, %v]: %w", d.Default, d.Min, d.Max, ErrInvalidDensity)
	}
	if d.RampStep <= 0 || d.RampIntervalMS <= 0 {
		return fmt.Errorf("ramp step %v every %dms: %w", d.RampStep, d.RampIntervalMS, ErrInvalidRamp)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window %dx%d: %w", c.Window.Width, c.Window.Height, ErrInvalidViewport)
	}
	if c.Propagation.MaxBounces <= 0 {
		return fmt.Errorf("max bounces %d must be positive", c.Propagation.MaxBounces)
	}
	return nil
}

// RampInterval returns the ramp tick interval as a duration
func (d DensityConfig) RampInterval() time.Duration {
	return time.Duration(d.RampIntervalMS) * time.Millisecond
}
