package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-tower-keep/internal/config"
	"go-tower-keep/internal/defs"
	"go-tower-keep/internal/utils"
	"go-tower-keep/pkg/geom"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(defs.DefaultLevel(), config.DefaultTuning(), utils.NewPRNGService(1))
	require.NoError(t, err)
	return w
}

func TestCreateGrowsPoolWhenNoneDead(t *testing.T) {
	pool := NewEnemyPool()
	for i := 0; i < 7; i++ {
		h := pool.Create(geom.Vec(float64(i), 0), 100)
		assert.Equal(t, i, h.Index)
	}
	assert.Equal(t, 7, pool.Size())
	assert.Equal(t, 7, pool.AliveCount())
}

func TestCreateReusesFirstDeadSlot(t *testing.T) {
	pool := NewEnemyPool()
	for i := 0; i < 4; i++ {
		pool.Create(geom.Vec(0, 0), 100)
	}
	old := pool.HandleOf(2)
	pool.At(2).Health.Decrease(100)
	pool.At(3).Health.Decrease(100)

	h := pool.Create(geom.Vec(5, 5), 100)
	assert.Equal(t, 4, pool.Size(), "a dead slot exists, so the pool must not grow")
	assert.Equal(t, 2, h.Index)
	assert.Equal(t, old.Generation+1, h.Generation)
	assert.Equal(t, geom.Vec(5, 5), pool.At(2).Position)
	assert.Equal(t, 100, pool.At(2).Health.Value)

	_, ok := pool.Get(old)
	assert.False(t, ok, "stale handles do not resolve")
	e, ok := pool.Get(h)
	require.True(t, ok)
	assert.Same(t, pool.At(2), e)

	_, ok = pool.Get(pool.HandleOf(3))
	assert.False(t, ok, "dead slots do not resolve")
	_, ok = pool.Get(Handle{Index: 99})
	assert.False(t, ok)
}

func TestAliveSkipsDead(t *testing.T) {
	pool := NewEnemyPool()
	for i := 0; i < 5; i++ {
		pool.Create(geom.Vec(float64(i), 0), 100)
	}
	pool.At(1).Health.Decrease(100)
	pool.At(4).Health.Decrease(100)

	var seen []int
	for i, e := range pool.Alive() {
		assert.False(t, e.IsDead())
		seen = append(seen, i)
	}
	assert.Equal(t, []int{0, 2, 3}, seen)

	var first []int
	for i := range pool.Alive() {
		first = append(first, i)
		break
	}
	assert.Equal(t, []int{0}, first)
}

func TestProjectilePoolRecycles(t *testing.T) {
	pool := NewProjectilePool()
	a := pool.Fire(geom.Vec(0, 0), geom.Vec(1, 0))
	b := pool.Fire(geom.Vec(0, 0), geom.Vec(0, 1))
	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)

	pool.At(0).Active = false
	c := pool.Fire(geom.Vec(1, 1), geom.Vec(-1, 0))
	assert.Equal(t, 0, c)
	assert.Equal(t, 2, pool.Size())
	assert.Equal(t, geom.Vec(1, 1), pool.At(0).Position)
	assert.Len(t, pool.Active(), 2)
}

func TestNewWorldLayout(t *testing.T) {
	w := newTestWorld(t)

	assert.Equal(t, geom.Vec(20, 20), w.Player.Position)
	assert.Equal(t, geom.Vec(-16, 0), w.Tower.Base.Pos)
	assert.Equal(t, geom.Vec(32, 24), w.Tower.Base.Size)
	assert.Equal(t, geom.Vec(-16, 24), w.Tower.Upper.Pos)
	assert.True(t, w.Tower.Upper.IsTrigger)

	require.Len(t, w.Spawns, 4)
	for _, s := range w.Spawns {
		assert.True(t, s.Active)
		assert.GreaterOrEqual(t, s.Interval, 2000.0)
		assert.Less(t, s.Interval, 3000.0)
	}

	require.Len(t, w.Scheduled, 4)
	for i := 1; i < len(w.Scheduled); i++ {
		assert.Less(t, w.Scheduled[i-1].At, w.Scheduled[i].At)
	}
	assert.Len(t, w.PlayerObstacles(), 1)
}

func TestNewWorldRejectsBadInput(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.Player.MaxHP = 0
	_, err := NewWorld(defs.DefaultLevel(), tuning, utils.NewPRNGService(1))
	assert.ErrorIs(t, err, config.ErrInvalidTuning)

	level := defs.DefaultLevel()
	delete(level.Sprites, defs.SpriteSlash)
	_, err = NewWorld(level, config.DefaultTuning(), utils.NewPRNGService(1))
	assert.ErrorIs(t, err, defs.ErrUnknownSprite)
}

func TestWallsBlockPlayer(t *testing.T) {
	level := defs.DefaultLevel()
	level.Walls = []geom.Vector2{geom.Vec(40, 40), geom.Vec(48, 40)}
	w, err := NewWorld(level, config.DefaultTuning(), utils.NewPRNGService(1))
	require.NoError(t, err)

	obstacles := w.PlayerObstacles()
	require.Len(t, obstacles, 3)
	assert.Equal(t, geom.Vec(40, 40), obstacles[0].Pos)
	assert.Equal(t, geom.Vec(8, 8), obstacles[0].Size)
}

func TestLookup(t *testing.T) {
	w := newTestWorld(t)
	w.Enemies.Create(geom.Vec(7, 8), 100)

	tests := []struct {
		key  string
		want geom.Vector2
	}{
		{"player", geom.Vec(20, 20)},
		{"tower", geom.Vec(0, 0)},
		{"tower-down", geom.Vec(0, -12)},
		{"tower-up", geom.Vec(0, 12)},
		{"enemy_0", geom.Vec(7, 8)},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := w.Lookup(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, key := range []string{"enemy_1", "enemy_x", "enemy_-1", "dragon", ""} {
		_, err := w.Lookup(key)
		assert.ErrorIs(t, err, ErrUnknownEntity, key)
	}
}
