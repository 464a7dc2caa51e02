package game

import "chosenoffset.com/raybounce/internal/core/geometry"

// Pointer tracks the light source position and the mouse button that ramps density.
type Pointer struct {
	Pos     geometry.Point
	Pressed bool // Left button state seen on the previous tick
}

// Message represents an on-screen message that expires after a few seconds.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
}
