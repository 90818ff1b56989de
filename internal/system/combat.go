package system

import (
	"go-tower-keep/internal/component"
	"go-tower-keep/internal/defs"
	"go-tower-keep/internal/entity"
	"go-tower-keep/pkg/geom"
	"go-tower-keep/pkg/logger"
)

// AttackSystem owns the table of in-flight swings. A swing is started once,
// can hurt at most once and is removed after the attack animation ends.
type AttackSystem struct {
	world *entity.World
}

func NewAttackSystem(world *entity.World) *AttackSystem {
	return &AttackSystem{world: world}
}

// TryStart records a swing by actor toward direction. It does nothing and
// returns false while the actor is still mid-swing.
func (s *AttackSystem) TryStart(actor component.Actor, direction geom.Vector2) bool {
	if _, busy := s.world.Attacks[actor]; busy {
		return false
	}
	pos, err := s.world.ActorPosition(actor)
	if err != nil {
		logger.Component("attack").WithError(err).Warn("swing from an actor with no position")
		return false
	}
	s.world.Attacks[actor] = &component.Attack{
		StartedAt: s.world.Now(),
		Direction: direction.Normalize(),
		Position:  pos,
	}
	return true
}

// Attack returns the in-flight swing of actor.
func (s *AttackSystem) Attack(actor component.Actor) (*component.Attack, bool) {
	a, ok := s.world.Attacks[actor]
	return a, ok
}

// HitBox is the weapon box of a swing, placed where the swing started.
func (s *AttackSystem) HitBox(a *component.Attack) geom.Collider {
	return geom.CenteredCollider(a.Position, s.world.Sprites.MustSize(defs.SpriteSlash))
}

// MeleeHit tests the attacker's swing against a defender hurt-box. Only a
// swing started this tick that has not hurt anyone yet can hit; a hit marks
// the swing as processed.
func (s *AttackSystem) MeleeHit(attacker component.Actor, defender geom.Collider) bool {
	a, ok := s.world.Attacks[attacker]
	if !ok || a.DamageProcessed || !a.Fresh(s.world.Now(), s.world.Delta()) {
		return false
	}
	if !geom.Overlaps(s.HitBox(a), defender) {
		return false
	}
	a.DamageProcessed = true
	return true
}

// Update drops swings whose animation is over.
func (s *AttackSystem) Update(deltaTime float64) {
	now := s.world.Now()
	duration := s.world.Tuning.Attack.AnimDuration
	for actor, a := range s.world.Attacks {
		if a.Elapsed(now) >= duration {
			delete(s.world.Attacks, actor)
		}
	}
}
