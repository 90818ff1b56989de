// internal/entity/world.go
package entity

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go-tower-keep/internal/clock"
	"go-tower-keep/internal/component"
	"go-tower-keep/internal/config"
	"go-tower-keep/internal/defs"
	"go-tower-keep/internal/utils"
	"go-tower-keep/pkg/geom"
)

// ErrUnknownEntity is returned by Lookup for keys with no entity behind them.
var ErrUnknownEntity = errors.New("unknown entity")

// Lookup keys besides "enemy_<i>".
const (
	KeyPlayer    = "player"
	KeyTower     = "tower"
	KeyTowerDown = "tower-down"
	KeyTowerUp   = "tower-up"
	enemyPrefix  = "enemy_"
)

// World is the state shared by every system. Each system owns the parts it
// writes:
//
//	PlayerSystem     Player (position, facing, heal)
//	EnemySystem      Enemies, Spawns (scheduled openings), Player/Tower hp
//	SpawnSystem      Enemies (creation), Spawns (lastSpawnAt)
//	TowerSystem      Tower, Projectiles, Enemies (hp)
//	AttackSystem     Attacks
//	AnimationSystem  Enemies (frames)
type World struct {
	Clock       *clock.Clock
	Tuning      config.Tuning
	Sprites     *defs.SpriteLibrary
	RNG         *utils.PRNGService
	Player      *component.Player
	Tower       *component.Tower
	Enemies     *EnemyPool
	Projectiles *ProjectilePool
	Spawns      []*component.SpawnSource
	// Scheduled is sorted by At and drained from the front.
	Scheduled  []component.ScheduledSpawn
	Attacks    map[component.Actor]*component.Attack
	Walls      []geom.Collider
	RallyPoint geom.Vector2
	State      *component.GameState
}

// NewWorld lays out a run from a level.
func NewWorld(level defs.LevelDefinition, tuning config.Tuning, rng *utils.PRNGService) (*World, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}
	if err := tuning.Validate(); err != nil {
		return nil, err
	}

	sprites := defs.NewSpriteLibrary(level.Sprites)
	w := &World{
		Clock:       clock.New(),
		Tuning:      tuning,
		Sprites:     sprites,
		RNG:         rng,
		Player:      component.NewPlayer(level.PlayerStart, tuning.Player.MaxHP),
		Enemies:     NewEnemyPool(),
		Projectiles: NewProjectilePool(),
		Attacks:     make(map[component.Actor]*component.Attack),
		RallyPoint:  level.RallyPoint,
		State:       &component.GameState{Phase: component.PhasePlaying},
	}

	w.Tower = &component.Tower{
		Origin: level.TowerOrigin,
		Base:   geom.CenteredCollider(level.TowerBase, sprites.MustSize(defs.SpriteTowerDown)),
		Upper:  geom.TriggerCollider(level.TowerUpper, sprites.MustSize(defs.SpriteTowerUp)),
		Health: component.NewHealth(tuning.Tower.MaxHP),
	}

	for _, s := range level.Spawns {
		src := w.NewSpawnSource(s.Position)
		src.Active = s.Active
		w.Spawns = append(w.Spawns, src)
	}

	for _, s := range level.Scheduled {
		w.Scheduled = append(w.Scheduled, component.ScheduledSpawn{At: s.AtMs, Position: s.Position})
	}
	slices.SortStableFunc(w.Scheduled, func(a, b component.ScheduledSpawn) int {
		switch {
		case a.At < b.At:
			return -1
		case a.At > b.At:
			return 1
		}
		return 0
	})

	if len(level.Walls) > 0 {
		wall := sprites.MustSize(defs.SpriteWall)
		for _, p := range level.Walls {
			w.Walls = append(w.Walls, geom.TopLeftCollider(p, wall))
		}
	}

	return w, nil
}

// NewSpawnSource builds an inactive source with a freshly drawn interval.
func (w *World) NewSpawnSource(pos geom.Vector2) *component.SpawnSource {
	return &component.SpawnSource{
		Position: pos,
		Interval: w.RNG.Between(w.Tuning.Spawn.IntervalMin, w.Tuning.Spawn.IntervalSpread),
	}
}

// Lookup resolves a position table key.
func (w *World) Lookup(key string) (geom.Vector2, error) {
	switch key {
	case KeyPlayer:
		return w.Player.Position, nil
	case KeyTower:
		return w.Tower.Origin, nil
	case KeyTowerDown:
		return w.Tower.BasePosition(), nil
	case KeyTowerUp:
		return w.Tower.UpperPosition(), nil
	}
	if idx, ok := strings.CutPrefix(key, enemyPrefix); ok {
		i, err := strconv.Atoi(idx)
		if err == nil && i >= 0 && i < w.Enemies.Size() {
			return w.Enemies.At(i).Position, nil
		}
	}
	return geom.Vector2{}, fmt.Errorf("%w: %q", ErrUnknownEntity, key)
}

// ActorPosition is the current position of an attacker.
func (w *World) ActorPosition(a component.Actor) (geom.Vector2, error) {
	return w.Lookup(a.Key())
}

// PlayerCollider is the player's hurt-box.
func (w *World) PlayerCollider() geom.Collider {
	return geom.CenteredCollider(w.Player.Position, w.Sprites.MustSize(defs.SpritePlayer))
}

// EnemySize is the size of every enemy hurt-box.
func (w *World) EnemySize() geom.Vector2 {
	return w.Sprites.MustSize(defs.SpriteEnemy)
}

// EnemyCollider is the hurt-box of the enemy at pos.
func (w *World) EnemyCollider(pos geom.Vector2) geom.Collider {
	return geom.CenteredCollider(pos, w.EnemySize())
}

// PlayerObstacles is what blocks the player: walls and the tower base.
func (w *World) PlayerObstacles() []geom.Collider {
	out := make([]geom.Collider, 0, len(w.Walls)+1)
	out = append(out, w.Walls...)
	return append(out, w.Tower.Base)
}

// Now is the current frame time.
func (w *World) Now() float64 { return w.Clock.Now() }

// Delta is the time since the previous frame.
func (w *World) Delta() float64 { return w.Clock.Delta() }

// Elapsed is the run age.
func (w *World) Elapsed() float64 { return w.Clock.Elapsed() }
