// internal/input/bot.go
package input

import (
	"math"

	"go-tower-keep/internal/entity"
	"go-tower-keep/internal/interfaces"
	"go-tower-keep/pkg/geom"
)

// Bot drives the player for headless and spectator runs: it guards the tower,
// chases enemies that come within Leash of it and swings at anything in
// AttackRange.
type Bot struct {
	Leash       float64
	AttackRange float64
	// Deadzone stops the bot from jittering around its goal.
	Deadzone float64

	state *State
	home  geom.Vector2
	homed bool
}

func NewBot() *Bot {
	return &Bot{
		Leash:       70,
		AttackRange: 14,
		Deadzone:    1.5,
		state:       NewState(),
	}
}

// Update decides this frame's controls from the world and returns them.
func (b *Bot) Update(w *entity.World, vp interfaces.Viewport) *State {
	if !b.homed {
		b.home = w.Player.Position
		b.homed = true
	}

	s := b.state
	s.Release()
	s.EndFrame()

	player := w.Player.Position
	nearest, found := geom.Vector2{}, false
	best := math.Inf(1)
	for _, e := range w.Enemies.Alive() {
		d := e.Position.DistanceTo(player)
		if d < best {
			best, nearest, found = d, e.Position, true
		}
	}

	goal := b.home
	if found && nearest.DistanceTo(w.Tower.Origin) <= b.Leash {
		goal = nearest
	}
	if w.Tower.IsDead() && found {
		// Nothing left to guard.
		goal = nearest
	}

	d := goal.Sub(player)
	s.SetHeld(interfaces.KeyRight, d.X > b.Deadzone)
	s.SetHeld(interfaces.KeyLeft, d.X < -b.Deadzone)
	s.SetHeld(interfaces.KeyUp, d.Y > b.Deadzone)
	s.SetHeld(interfaces.KeyDown, d.Y < -b.Deadzone)

	if found && best <= b.AttackRange {
		s.SetMouse(vp.WorldToScreen(nearest))
		s.SetMouseDown(interfaces.MouseLeft)
	}
	return s
}
