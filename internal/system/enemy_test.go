package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-tower-keep/internal/component"
	"go-tower-keep/internal/defs"
	"go-tower-keep/internal/event"
	"go-tower-keep/pkg/geom"
)

func TestEnemyTargeting(t *testing.T) {
	h := newHarness(t, emptyLevel())
	h.at(0)
	h.w.Player.Position = geom.Vec(60, 60)

	assert.Equal(t, geom.Vec(60, 60), h.enemies.Target(geom.Vec(70, 70)), "player within aggro radius")
	assert.Equal(t, h.w.RallyPoint, h.enemies.Target(geom.Vec(-80, -80)), "otherwise the rally point")

	h.w.Tower.Health.Value = 0
	assert.Equal(t, geom.Vec(60, 60), h.enemies.Target(geom.Vec(-80, -80)), "nothing left to guard")
}

func TestEnemyWalksTowardRallyPoint(t *testing.T) {
	h := newHarness(t, emptyLevel())
	h.at(0)
	h.w.Enemies.Create(geom.Vec(-100, 0), 100)

	h.at(1000)
	h.enemies.Update(h.w.Delta())

	e := h.w.Enemies.At(0)
	assert.InDelta(t, -85, e.Position.X, 1e-9)
	assert.InDelta(t, 0, e.Position.Y, 1e-9)
	assert.True(t, e.HasTarget)
	assert.Equal(t, h.w.RallyPoint, e.Target)
}

func TestEnemyEnragedWhenTowerFalls(t *testing.T) {
	h := newHarness(t, emptyLevel())
	h.at(0)
	h.w.Tower.Health.Value = 0
	h.w.Player.Position = geom.Vec(0, 100)
	h.w.Enemies.Create(geom.Vec(100, 100), 100)

	h.at(1000)
	h.enemies.Update(h.w.Delta())
	assert.InDelta(t, 100-21, h.w.Enemies.At(0).Position.X, 1e-9)
}

func TestEnemyBitesPlayerWithCooldown(t *testing.T) {
	h := newHarness(t, emptyLevel())
	h.at(0)
	h.w.Player.Position = geom.Vec(50, 50)
	h.w.Enemies.Create(geom.Vec(58, 50), 100)

	h.enemies.Update(h.w.Delta())
	assert.Equal(t, 96, h.w.Player.Health.Value)
	assert.Equal(t, 0.0, h.w.Player.LastHitAt.Time())
	_, swinging := h.attacks.Attack(component.EnemyActor(0))
	assert.True(t, swinging)

	h.at(599)
	h.enemies.Update(h.w.Delta())
	assert.Equal(t, 96, h.w.Player.Health.Value)

	h.at(600)
	h.enemies.Update(h.w.Delta())
	assert.Equal(t, 92, h.w.Player.Health.Value)
	assert.Equal(t, 600.0, h.w.Player.LastHitAt.Time())

	damaged := h.rec.ofType(event.PlayerDamaged)
	require.Len(t, damaged, 2)
	assert.Equal(t, event.DamageData{Amount: 4, HP: 92, Source: 0}, damaged[1].Data)
}

func TestEnemyBitesTower(t *testing.T) {
	h := newHarness(t, emptyLevel())
	h.at(0)
	h.w.Enemies.Create(geom.Vec(0, -30), 100)

	h.enemies.Update(h.w.Delta())
	assert.Equal(t, 99, h.w.Tower.Health.Value)
	assert.Equal(t, geom.Vec(0, -30), h.w.Enemies.At(0).Position, "the base blocks the enemy")
	assert.Len(t, h.rec.ofType(event.TowerDamaged), 1)
}

func TestTowerDestroyedOnce(t *testing.T) {
	h := newHarness(t, emptyLevel())
	h.at(0)
	h.w.Tower.Health.Value = 1
	h.w.Player.Position = geom.Vec(200, 200)
	h.w.Enemies.Create(geom.Vec(0, -30), 100)

	h.enemies.Update(h.w.Delta())
	assert.True(t, h.w.Tower.IsDead())
	assert.Len(t, h.rec.ofType(event.TowerDestroyed), 1)

	h.at(1000)
	h.enemies.Update(h.w.Delta())
	assert.Len(t, h.rec.ofType(event.TowerDamaged), 1, "a dead tower takes no more bites")
	assert.Len(t, h.rec.ofType(event.TowerDestroyed), 1)
}

func TestEnemiesDoNotStack(t *testing.T) {
	h := newHarness(t, emptyLevel())
	h.at(0)
	h.w.Enemies.Create(geom.Vec(-100, 0), 100)
	h.w.Enemies.Create(geom.Vec(-84, 0), 100)

	h.at(1000)
	h.enemies.Update(h.w.Delta())

	assert.Equal(t, geom.Vec(-100, 0), h.w.Enemies.At(0).Position, "blocked by the enemy in front")
	assert.InDelta(t, -69, h.w.Enemies.At(1).Position.X, 1e-9)
}

func TestDeadEnemiesAreSkipped(t *testing.T) {
	h := newHarness(t, emptyLevel())
	h.at(0)
	h.w.Player.Position = geom.Vec(50, 50)
	h.w.Enemies.Create(geom.Vec(58, 50), 100)
	h.w.Enemies.At(0).Health.Value = 0

	h.at(1000)
	h.enemies.Update(h.w.Delta())
	h.anim.Update(h.w.Delta())

	e := h.w.Enemies.At(0)
	assert.Equal(t, geom.Vec(58, 50), e.Position)
	assert.False(t, e.HasTarget)
	assert.False(t, e.LastFrameAt.IsSet())
	assert.Equal(t, 100, h.w.Player.Health.Value)
	assert.False(t, h.tower.Fire(), "nothing alive to shoot at")

	h.w.Enemies.At(0).Position = geom.Vec(0, 12)
	h.tower.UpdateOcclusion()
	assert.False(t, h.w.Tower.Transparent)
}

func TestScheduledSourcesOpenOnce(t *testing.T) {
	level := emptyLevel()
	level.Scheduled = []defs.ScheduledSpawnDefinition{
		{AtMs: 50000, Position: geom.Vec(0, 110)},
		{AtMs: 20000, Position: geom.Vec(0, -110)},
	}
	h := newHarness(t, level)
	h.at(1000)

	h.at(20999)
	h.enemies.Update(h.w.Delta())
	assert.Empty(t, h.w.Spawns)

	h.at(21000)
	h.enemies.Update(h.w.Delta())
	require.Len(t, h.w.Spawns, 1)
	assert.Equal(t, geom.Vec(0, -110), h.w.Spawns[0].Position)
	assert.True(t, h.w.Spawns[0].Active)

	h.enemies.Update(h.w.Delta())
	assert.Len(t, h.w.Spawns, 1)

	h.at(200000)
	h.enemies.Update(h.w.Delta())
	assert.Len(t, h.w.Spawns, 2)
	assert.Empty(t, h.w.Scheduled)
	assert.Len(t, h.rec.ofType(event.SpawnSourceOpened), 2)
}
