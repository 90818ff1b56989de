package system

import (
	"math"

	"go-tower-keep/internal/component"
	"go-tower-keep/internal/defs"
	"go-tower-keep/internal/entity"
	"go-tower-keep/internal/event"
	"go-tower-keep/internal/interfaces"
	"go-tower-keep/pkg/geom"
)

// PlayerSystem moves the player from input, starts their swings and heals
// them once they have been left alone for a while.
type PlayerSystem struct {
	world           *entity.World
	attacks         *AttackSystem
	viewport        interfaces.Viewport
	eventDispatcher *event.Dispatcher
	input           interfaces.InputSource
}

func NewPlayerSystem(world *entity.World, attacks *AttackSystem, viewport interfaces.Viewport, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{
		world:           world,
		attacks:         attacks,
		viewport:        viewport,
		eventDispatcher: eventDispatcher,
	}
}

// SetInput swaps the control source. Without one the player stands still.
func (s *PlayerSystem) SetInput(input interfaces.InputSource) {
	s.input = input
}

func (s *PlayerSystem) Update(deltaTime float64) {
	if s.input != nil {
		s.move(deltaTime)
		s.attack()
	}
	s.heal()
}

// axis maps a key pair to -1, 0 or 1. When both keys are held, left beats
// right and up beats down.
func axis(input interfaces.InputSource, neg, pos interfaces.Key, posWins bool) float64 {
	n, p := input.IsHeld(neg), input.IsHeld(pos)
	switch {
	case n && p && posWins:
		return 1
	case n:
		return -1
	case p:
		return 1
	}
	return 0
}

func (s *PlayerSystem) move(deltaTime float64) {
	xaxis := axis(s.input, interfaces.KeyLeft, interfaces.KeyRight, false)
	yaxis := axis(s.input, interfaces.KeyDown, interfaces.KeyUp, true)
	if xaxis == 0 && yaxis == 0 {
		return
	}

	step := s.world.Tuning.Player.Speed * deltaTime
	dx, dy := xaxis*step, yaxis*step
	if dx != 0 && dy != 0 {
		dx /= math.Sqrt2
		dy /= math.Sqrt2
	}

	player := s.world.Player
	player.Facing = geom.Vec(xaxis, yaxis).Normalize()

	newPos := player.Position.Add(geom.Vec(dx, dy))
	size := s.world.Sprites.MustSize(defs.SpritePlayer)
	blocked := geom.ProbeAgainst(newPos, player.Position, size, s.world.PlayerObstacles())
	geom.UpdatePositionAfterCollision(&player.Position, newPos, blocked)
}

func (s *PlayerSystem) attack() {
	if s.input.MouseDown() != interfaces.MouseLeft {
		return
	}
	player := s.world.Player
	aim := s.viewport.ScreenToWorld(s.input.MouseScreen()).Sub(player.Position)
	if aim.IsZero() {
		aim = player.Facing
	}
	s.attacks.TryStart(component.PlayerActor(), aim)
}

func (s *PlayerSystem) heal() {
	player := s.world.Player
	tuning := s.world.Tuning.Player
	now := s.world.Now()

	if player.Health.IsDead() || player.Health.Value >= player.Health.Max {
		return
	}
	if !player.LastHitAt.Expired(now, tuning.AutohealTimeout) || !player.LastHealAt.Expired(now, tuning.HealInterval) {
		return
	}
	player.Health.Increase(tuning.HealAmount)
	player.LastHealAt.Mark(now)
	s.eventDispatcher.Emit(event.PlayerHealed, now, event.DamageData{
		Amount: tuning.HealAmount,
		HP:     player.Health.Value,
		Source: -1,
	})
}
