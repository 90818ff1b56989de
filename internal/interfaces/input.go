package interfaces

import "go-tower-keep/pkg/geom"

// Key is a movement key.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
)

// MouseButton is the button currently held, MouseNone when none is.
type MouseButton int

const (
	MouseNone MouseButton = iota - 1
	MouseLeft
	MouseRight
)

// Click is a completed click in screen space.
type Click struct {
	Button MouseButton
	Screen geom.Vector2
}

// InputSource is a per-frame snapshot of the player's controls.
type InputSource interface {
	IsHeld(k Key) bool
	MouseScreen() geom.Vector2
	MouseDown() MouseButton
	// Clicks returns the clicks completed since the previous frame.
	Clicks() []Click
}
