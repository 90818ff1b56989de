// internal/event/types.go
package event

import (
	"go-tower-keep/internal/entity"
	"go-tower-keep/pkg/geom"
)

const (
	EnemySpawned      EventType = "EnemySpawned"
	EnemyKilled       EventType = "EnemyKilled"
	PlayerDamaged     EventType = "PlayerDamaged"
	PlayerHealed      EventType = "PlayerHealed"
	TowerDamaged      EventType = "TowerDamaged"
	TowerDestroyed    EventType = "TowerDestroyed"
	PlayerDied        EventType = "PlayerDied"
	SpawnSourceOpened EventType = "SpawnSourceOpened"
	ProjectileFired   EventType = "ProjectileFired"
)

// AllTypes lists every event type, for listeners that want everything.
var AllTypes = []EventType{
	EnemySpawned, EnemyKilled, PlayerDamaged, PlayerHealed, TowerDamaged,
	TowerDestroyed, PlayerDied, SpawnSourceOpened, ProjectileFired,
}

// Killer tells who finished an enemy.
type Killer string

const (
	KilledByPlayer Killer = "player"
	KilledByTower  Killer = "tower"
)

type EnemySpawnedData struct {
	Enemy    entity.Handle
	Position geom.Vector2
	PoolSize int
}

type EnemyKilledData struct {
	Enemy    entity.Handle
	Position geom.Vector2
	By       Killer
	// TowerHeal is the reward granted to the tower, 0 for tower kills.
	TowerHeal int
}

// DamageData is the payload of PlayerDamaged, TowerDamaged and PlayerHealed.
type DamageData struct {
	Amount int
	HP     int
	// Source is the attacking enemy slot, -1 when not applicable.
	Source int
}

type SpawnSourceOpenedData struct {
	Position geom.Vector2
	At       float64
}

type ProjectileFiredData struct {
	Slot   int
	Target int
	Aim    geom.Vector2
}

type PlayerDiedData struct {
	Kills      int
	DurationMs float64
}
