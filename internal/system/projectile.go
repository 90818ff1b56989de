// internal/system/projectile.go
package system

import (
	"math"

	"go-tower-keep/internal/defs"
	"go-tower-keep/internal/entity"
	"go-tower-keep/internal/event"
	"go-tower-keep/internal/interfaces"
	"go-tower-keep/pkg/geom"
)

// ProjectileSystem moves tower shots, retires the ones that leave the
// viewport and applies hits. A shot hurts the first enemy it overlaps and is
// then retired.
type ProjectileSystem struct {
	world           *entity.World
	viewport        interfaces.Viewport
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(world *entity.World, viewport interfaces.Viewport, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		world:           world,
		viewport:        viewport,
		eventDispatcher: eventDispatcher,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	step := s.world.Tuning.Tower.ProjectileSpeed * deltaTime
	for _, p := range s.world.Projectiles.Active() {
		p.Position = p.Position.MoveAlong(p.Direction, step)
		if !s.viewport.IsInViewport(p.Position) {
			p.Active = false
		}
	}
	s.resolveHits()
}

// Damage is the damage of one shot, scaled by the tower's hp fraction when
// the tuning asks for it.
func (s *ProjectileSystem) Damage() int {
	tuning := s.world.Tuning.Tower
	if !tuning.DamageScalesWithHP {
		return tuning.ProjectileDamage
	}
	return int(math.Round(float64(tuning.ProjectileDamage) * s.world.Tower.Health.Fraction()))
}

func (s *ProjectileSystem) resolveHits() {
	w := s.world
	now := w.Now()
	size := w.Sprites.MustSize(defs.SpriteProjectile)

	for _, p := range w.Projectiles.Active() {
		box := geom.CenteredCollider(p.Position, size)
		for i, e := range w.Enemies.Alive() {
			if !geom.Overlaps(box, w.EnemyCollider(e.Position)) {
				continue
			}
			e.Health.Decrease(s.Damage())
			e.Flash.Trigger(now)
			p.Active = false
			if e.IsDead() {
				s.eventDispatcher.Emit(event.EnemyKilled, now, event.EnemyKilledData{
					Enemy:    w.Enemies.HandleOf(i),
					Position: e.Position,
					By:       event.KilledByTower,
				})
			}
			break
		}
	}
}
