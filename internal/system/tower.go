// internal/system/tower.go
package system

import (
	"go-tower-keep/internal/entity"
	"go-tower-keep/internal/event"
	"go-tower-keep/pkg/geom"
)

// TowerSystem fires at the nearest enemy, advances the shots through the
// ProjectileSystem and tracks whether anyone stands behind the upper tower.
type TowerSystem struct {
	world           *entity.World
	projectiles     *ProjectileSystem
	eventDispatcher *event.Dispatcher
}

func NewTowerSystem(world *entity.World, projectiles *ProjectileSystem, eventDispatcher *event.Dispatcher) *TowerSystem {
	return &TowerSystem{
		world:           world,
		projectiles:     projectiles,
		eventDispatcher: eventDispatcher,
	}
}

func (s *TowerSystem) Update(deltaTime float64) {
	s.Fire()
	s.projectiles.Update(deltaTime)
	s.UpdateOcclusion()
}

// Fire shoots at the closest living enemy when the tower is alive and its
// jittered interval has passed. The aim is captured once and never updated.
func (s *TowerSystem) Fire() bool {
	w := s.world
	tower := w.Tower
	now := w.Now()
	if tower.IsDead() {
		return false
	}
	if tower.LastShotAt.IsSet() {
		interval := w.RNG.Jitter(w.Tuning.Tower.FireInterval, w.Tuning.Tower.FireVariance)
		if tower.LastShotAt.Since(now) < interval {
			return false
		}
	}

	target, targetPos, ok := closestEnemy(w.Enemies, tower.Origin)
	if !ok {
		return false
	}

	aim := targetPos.Sub(tower.Origin)
	slot := w.Projectiles.Fire(tower.Origin, aim)
	tower.LastShotAt.Mark(now)
	s.eventDispatcher.Emit(event.ProjectileFired, now, event.ProjectileFiredData{
		Slot:   slot,
		Target: target,
		Aim:    aim,
	})
	return true
}

// UpdateOcclusion recomputes the upper tower transparency from scratch.
func (s *TowerSystem) UpdateOcclusion() {
	w := s.world
	upper := w.Tower.Upper

	transparent := geom.Overlaps(upper, w.PlayerCollider())
	if !transparent {
		for _, e := range w.Enemies.Alive() {
			if geom.Overlaps(upper, w.EnemyCollider(e.Position)) {
				transparent = true
				break
			}
		}
	}
	w.Tower.Transparent = transparent
}
