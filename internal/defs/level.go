// internal/defs/level.go
package defs

import (
	"errors"
	"fmt"

	"go-tower-keep/pkg/geom"
)

// SpawnDefinition is a spawn source present from the start of a run.
type SpawnDefinition struct {
	Position geom.Vector2 `json:"position"`
	Active   bool         `json:"active"`
}

// ScheduledSpawnDefinition opens a source once the run is AtMs old.
type ScheduledSpawnDefinition struct {
	AtMs     float64      `json:"at_ms"`
	Position geom.Vector2 `json:"position"`
}

// LevelDefinition is the static layout of a run. Tower parts are centers in
// world units; walls are top-left corners.
type LevelDefinition struct {
	Name        string                     `json:"name"`
	TowerOrigin geom.Vector2               `json:"tower_origin"`
	TowerBase   geom.Vector2               `json:"tower_base"`
	TowerUpper  geom.Vector2               `json:"tower_upper"`
	PlayerStart geom.Vector2               `json:"player_start"`
	RallyPoint  geom.Vector2               `json:"rally_point"`
	Spawns      []SpawnDefinition          `json:"spawns"`
	Scheduled   []ScheduledSpawnDefinition `json:"scheduled"`
	Walls       []geom.Vector2             `json:"walls"`
	Sprites     map[string]geom.Vector2    `json:"sprites"`
}

// DefaultLevel is the stock arena: the tower in the middle, four corner
// sources and four more opening over the first minutes.
func DefaultLevel() LevelDefinition {
	return LevelDefinition{
		Name:        "keep",
		TowerOrigin: geom.Vec(0, 0),
		TowerBase:   geom.Vec(0, -12),
		TowerUpper:  geom.Vec(0, 12),
		PlayerStart: geom.Vec(20, 20),
		RallyPoint:  geom.Vec(0, 0),
		Spawns: []SpawnDefinition{
			{Position: geom.Vec(-100, 100), Active: true},
			{Position: geom.Vec(100, 100), Active: true},
			{Position: geom.Vec(-100, -100), Active: true},
			{Position: geom.Vec(100, -100), Active: true},
		},
		Scheduled: []ScheduledSpawnDefinition{
			{AtMs: 20000, Position: geom.Vec(0, -110)},
			{AtMs: 50000, Position: geom.Vec(0, 110)},
			{AtMs: 90000, Position: geom.Vec(110, 0)},
			{AtMs: 140000, Position: geom.Vec(-110, 0)},
		},
		Sprites: DefaultSprites(),
	}
}

// Validate checks that every sprite the simulation asks for is present.
func (l LevelDefinition) Validate() error {
	lib := NewSpriteLibrary(l.Sprites)
	for _, key := range []string{SpritePlayer, SpriteEnemy, SpriteSlash, SpriteTowerDown, SpriteTowerUp, SpriteProjectile} {
		if _, err := lib.Size(key); err != nil {
			return fmt.Errorf("level %q: %w", l.Name, err)
		}
	}
	if len(l.Walls) > 0 {
		if _, err := lib.Size(SpriteWall); err != nil {
			return fmt.Errorf("level %q has walls: %w", l.Name, err)
		}
	}
	for _, s := range l.Scheduled {
		if s.AtMs < 0 {
			return fmt.Errorf("level %q: %w", l.Name, errNegativeSchedule)
		}
	}
	return nil
}

var errNegativeSchedule = errors.New("scheduled spawn before run start")
