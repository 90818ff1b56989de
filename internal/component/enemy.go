package component

import (
	"go-tower-keep/internal/clock"
	"go-tower-keep/pkg/geom"
)

// Enemy is one pool slot. A slot with zero hp is dead and waits for reuse.
type Enemy struct {
	Position geom.Vector2
	Health   Health
	// Target is where the enemy walked this tick; valid when HasTarget.
	Target    geom.Vector2
	HasTarget bool
	Cooldown  Cooldown
	// Frame is the current sprite frame, switched every frame interval.
	Frame       int
	LastFrameAt clock.Stamp
	Flash       DamageFlash
	// Generation grows each time the slot is reused.
	Generation uint32
}

func (e *Enemy) IsDead() bool { return e.Health.IsDead() }

// Reset revives the slot at pos.
func (e *Enemy) Reset(pos geom.Vector2, maxHP int) {
	gen := e.Generation + 1
	*e = Enemy{
		Position:   pos,
		Health:     NewHealth(maxHP),
		Generation: gen,
	}
}

// FacingX is -1 when the enemy walks left, 1 otherwise.
func (e *Enemy) FacingX() float64 {
	if e.HasTarget && e.Target.X < e.Position.X {
		return -1
	}
	return 1
}
