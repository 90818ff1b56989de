// internal/component/tower.go
package component

import (
	"go-tower-keep/internal/clock"
	"go-tower-keep/pkg/geom"
)

// Tower is the defended structure. Origin is where it aims and fires from,
// Base blocks movement and Upper is the occlusion trigger over it.
type Tower struct {
	Origin     geom.Vector2
	Base       geom.Collider
	Upper      geom.Collider
	Health     Health
	LastShotAt clock.Stamp
	// Transparent is set while the player or an enemy is behind the upper tower.
	Transparent bool
	Flash       DamageFlash
}

func (t *Tower) IsDead() bool { return t.Health.IsDead() }

// BasePosition is the center of the base collider.
func (t *Tower) BasePosition() geom.Vector2 { return t.Base.Center() }

// UpperPosition is the center of the upper trigger.
func (t *Tower) UpperPosition() geom.Vector2 { return t.Upper.Center() }
