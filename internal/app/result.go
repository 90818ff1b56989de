package app

import (
	"github.com/google/uuid"

	"go-tower-keep/internal/records"
)

// RunStats counts what happened during a run.
type RunStats struct {
	Spawned          int `json:"spawned"`
	PlayerKills      int `json:"player_kills"`
	TowerKills       int `json:"tower_kills"`
	ShotsFired       int `json:"shots_fired"`
	PlayerDamage     int `json:"player_damage"`
	TowerDamage      int `json:"tower_damage"`
	PlayerHealed     int `json:"player_healed"`
	SourcesOpened    int `json:"sources_opened"`
	PeakEnemies      int `json:"peak_enemies"`
	// LongestEnemyLifeMs is the longest spawn-to-kill time of a killed enemy.
	LongestEnemyLifeMs int `json:"longest_enemy_life_ms"`
	TowerDestroyedAt   int `json:"tower_destroyed_at,omitempty"`
}

// RunResult is the end-of-run report handed to the records layer.
type RunResult struct {
	RunID uuid.UUID `json:"run_id"`
	// DurationMs is truncated to whole milliseconds.
	DurationMs float64  `json:"duration_ms"`
	Kills      int      `json:"kills"`
	Stats      RunStats `json:"stats"`
}

// Record is the part of the result the best-run records compare.
func (r RunResult) Record() records.Entry {
	return records.Entry{DurationMs: r.DurationMs, Kills: r.Kills}
}
