// internal/system/enemy.go
package system

import (
	"go-tower-keep/internal/component"
	"go-tower-keep/internal/entity"
	"go-tower-keep/internal/event"
	"go-tower-keep/pkg/geom"
	"go-tower-keep/pkg/logger"
)

// EnemySystem runs enemy AI: it opens scheduled spawn sources, then walks
// every living enemy toward its target, resolves the player's swing against
// it, lets it bite the player or the tower and keeps enemies from stacking.
type EnemySystem struct {
	world           *entity.World
	attacks         *AttackSystem
	eventDispatcher *event.Dispatcher
}

func NewEnemySystem(world *entity.World, attacks *AttackSystem, eventDispatcher *event.Dispatcher) *EnemySystem {
	return &EnemySystem{
		world:           world,
		attacks:         attacks,
		eventDispatcher: eventDispatcher,
	}
}

func (s *EnemySystem) Update(deltaTime float64) {
	s.openScheduledSources()

	for i, e := range s.world.Enemies.Alive() {
		s.updateEnemy(i, e, deltaTime)
	}
}

// openScheduledSources turns every schedule entry the run has reached into an
// active spawn source. Each entry fires once.
func (s *EnemySystem) openScheduledSources() {
	w := s.world
	for len(w.Scheduled) > 0 && w.Elapsed() >= w.Scheduled[0].At {
		next := w.Scheduled[0]
		w.Scheduled = w.Scheduled[1:]

		src := w.NewSpawnSource(next.Position)
		src.Active = true
		w.Spawns = append(w.Spawns, src)

		logger.Component("enemy").WithField("position", next.Position).Debug("spawn source opened")
		s.eventDispatcher.Emit(event.SpawnSourceOpened, w.Now(), event.SpawnSourceOpenedData{
			Position: next.Position,
			At:       next.At,
		})
	}
}

// Target picks where an enemy at pos walks: the player once the tower has
// fallen or when the player is within aggro range, the rally point otherwise.
func (s *EnemySystem) Target(pos geom.Vector2) geom.Vector2 {
	w := s.world
	if w.Tower.IsDead() {
		return w.Player.Position
	}
	if w.Player.Position.DistanceTo(pos) < w.Tuning.Enemy.AggroRadius {
		return w.Player.Position
	}
	return w.RallyPoint
}

func (s *EnemySystem) speed() float64 {
	speed := s.world.Tuning.Enemy.Speed
	if s.world.Tower.IsDead() {
		speed *= s.world.Tuning.Enemy.EnragedSpeedMultiplier
	}
	return speed
}

func (s *EnemySystem) updateEnemy(i int, e *component.Enemy, deltaTime float64) {
	w := s.world
	now := w.Now()

	target := s.Target(e.Position)
	e.Target, e.HasTarget = target, true
	newPos := e.Position.MoveTowards(target, s.speed()*deltaTime)

	if s.hitByPlayer(i, e, newPos) {
		return
	}

	size := w.EnemySize()

	blocked := geom.ProbeAxisMovement(newPos, e.Position, size, w.PlayerCollider())
	if blocked.Any() && s.tryAttack(i, e, w.Player.Position) {
		dmg := w.Tuning.Enemy.DamageToPlayer
		w.Player.Health.Decrease(dmg)
		w.Player.LastHitAt.Mark(now)
		w.Player.Flash.Trigger(now)
		s.eventDispatcher.Emit(event.PlayerDamaged, now, event.DamageData{
			Amount: dmg,
			HP:     w.Player.Health.Value,
			Source: i,
		})
	}

	towerHit := geom.ProbeAxisMovement(newPos, e.Position, size, w.Tower.Base)
	if towerHit.Any() && !w.Tower.IsDead() && s.tryAttack(i, e, w.Tower.BasePosition()) {
		dmg := w.Tuning.Enemy.DamageToTower
		w.Tower.Health.Decrease(dmg)
		w.Tower.Flash.Trigger(now)
		s.eventDispatcher.Emit(event.TowerDamaged, now, event.DamageData{
			Amount: dmg,
			HP:     w.Tower.Health.Value,
			Source: i,
		})
		if w.Tower.IsDead() {
			logger.Component("enemy").WithField("enemy", i).Debug("tower destroyed")
			s.eventDispatcher.Emit(event.TowerDestroyed, now, nil)
		}
	}
	blocked = blocked.Or(towerHit)

	for j, other := range w.Enemies.Alive() {
		if blocked.Both() {
			break
		}
		if j == i {
			continue
		}
		blocked = blocked.Or(geom.ProbeAxisMovement(newPos, e.Position, size, w.EnemyCollider(other.Position)))
	}

	geom.UpdatePositionAfterCollision(&e.Position, newPos, blocked)
}

// hitByPlayer applies the player's fresh swing to enemy i, tested at the
// position it is moving to, and reports whether it died.
func (s *EnemySystem) hitByPlayer(i int, e *component.Enemy, pos geom.Vector2) bool {
	w := s.world
	if !s.attacks.MeleeHit(component.PlayerActor(), w.EnemyCollider(pos)) {
		return false
	}
	now := w.Now()
	e.Health.Decrease(w.Tuning.Player.AttackDamage)
	e.Flash.Trigger(now)
	if !e.IsDead() {
		return false
	}

	heal := 0
	if !w.Tower.IsDead() {
		reward := w.Tuning.KillReward
		heal = reward.TowerHealMin + w.RNG.Intn(reward.TowerHealSpread)
		w.Tower.Health.Increase(heal)
	}
	w.Player.Kills++

	s.eventDispatcher.Emit(event.EnemyKilled, now, event.EnemyKilledData{
		Enemy:     w.Enemies.HandleOf(i),
		Position:  e.Position,
		By:        event.KilledByPlayer,
		TowerHeal: heal,
	})
	return true
}

// tryAttack starts a bite by enemy i toward targetPos unless the enemy is
// still on cooldown.
func (s *EnemySystem) tryAttack(i int, e *component.Enemy, targetPos geom.Vector2) bool {
	now := s.world.Now()
	if !e.Cooldown.Ready(now, s.world.Tuning.Enemy.AttackTimeout) {
		return false
	}
	e.Cooldown.LastAt.Mark(now)
	s.attacks.TryStart(component.EnemyActor(i), targetPos.Sub(e.Position))
	return true
}
