package component

import (
	"go-tower-keep/internal/clock"
	"go-tower-keep/pkg/geom"
)

// SpawnSource emits an enemy every Interval milliseconds while Active.
type SpawnSource struct {
	Position    geom.Vector2
	Active      bool
	LastSpawnAt clock.Stamp
	Interval    float64
}

// Due reports whether the source should spawn at now.
func (s *SpawnSource) Due(now float64) bool {
	return s.Active && s.LastSpawnAt.Expired(now, s.Interval)
}

// ScheduledSpawn opens a new active source once the run is At milliseconds old.
type ScheduledSpawn struct {
	At       float64
	Position geom.Vector2
}
