// internal/input/state.go
package input

import (
	"go-tower-keep/internal/interfaces"
	"go-tower-keep/pkg/geom"
)

// State is a frame snapshot of the controls. Frontends fill it, the player
// system reads it.
type State struct {
	held   map[interfaces.Key]bool
	mouse  geom.Vector2
	button interfaces.MouseButton
	clicks []interfaces.Click
}

var _ interfaces.InputSource = (*State)(nil)

func NewState() *State {
	return &State{
		held:   make(map[interfaces.Key]bool),
		button: interfaces.MouseNone,
	}
}

func (s *State) IsHeld(k interfaces.Key) bool          { return s.held[k] }
func (s *State) MouseScreen() geom.Vector2             { return s.mouse }
func (s *State) MouseDown() interfaces.MouseButton     { return s.button }
func (s *State) Clicks() []interfaces.Click            { return s.clicks }
func (s *State) SetHeld(k interfaces.Key, held bool)   { s.held[k] = held }
func (s *State) SetMouse(screen geom.Vector2)          { s.mouse = screen }
func (s *State) SetMouseDown(b interfaces.MouseButton) { s.button = b }

// AddClick queues a completed click for this frame.
func (s *State) AddClick(c interfaces.Click) {
	s.clicks = append(s.clicks, c)
}

// Clicked reports whether a click of button b completed this frame.
func (s *State) Clicked(b interfaces.MouseButton) bool {
	for _, c := range s.clicks {
		if c.Button == b {
			return true
		}
	}
	return false
}

// EndFrame drops the clicks consumed this frame. Held keys and the mouse stay.
func (s *State) EndFrame() {
	s.clicks = s.clicks[:0]
}

// Release lets go of every key and button.
func (s *State) Release() {
	clear(s.held)
	s.button = interfaces.MouseNone
}
