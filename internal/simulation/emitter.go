package simulation

import (
	"fmt"
	"math"

	"chosenoffset.com/raybounce/internal/core/geometry"
)

// MaxPrimaryRays bounds how many primary rays a single pass may emit
const MaxPrimaryRays = 1 << 20

// Emit creates one primary ray every density degrees starting at 0, while the angle is below 360.
// Each ray starts SpawnOffset units from origin along its own direction.
func Emit(origin geometry.Point, density, castLength float64) ([]Ray, error) {
	if err := validDensity(density); err != nil {
		return nil, err
	}

	rays := make([]Ray, 0, int(math.Ceil(360/density)))
	for angle := 0.0; angle < 360; angle += density {
		rays = append(rays, Ray{
			Origin:     origin.Plus(geometry.Direction(angle).Times(SpawnOffset)),
			Angle:      angle,
			CastLength: castLength,
			Thickness:  1,
		})
	}
	return rays, nil
}

func validDensity(density float64) error {
	if math.IsNaN(density) || math.IsInf(density, 0) || density <= 0 {
		return fmt.Errorf("density %v: %w", density, ErrInvalidDensity)
	}
	if 360/density > MaxPrimaryRays {
		return fmt.Errorf("density %v emits more than %d rays: %w", density, MaxPrimaryRays, ErrInvalidDensity)
	}
	return nil
}
