// internal/component/player.go
package component

import (
	"go-tower-keep/internal/clock"
	"go-tower-keep/pkg/geom"
)

// Player is the hero record.
type Player struct {
	Position geom.Vector2
	// Facing is the last movement direction, unit length.
	Facing     geom.Vector2
	Health     Health
	LastHitAt  clock.Stamp
	LastHealAt clock.Stamp
	Kills      int
	Flash      DamageFlash
}

func NewPlayer(pos geom.Vector2, maxHP int) *Player {
	return &Player{
		Position: pos,
		Facing:   geom.Vec(1, 0),
		Health:   NewHealth(maxHP),
	}
}
