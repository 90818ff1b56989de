// internal/system/spawn.go
package system

import (
	"go-tower-keep/internal/entity"
	"go-tower-keep/internal/event"
)

// SpawnSystem lets every active source emit an enemy once its interval has
// passed since its last spawn.
type SpawnSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewSpawnSystem(world *entity.World, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

func (s *SpawnSystem) Update(deltaTime float64) {
	w := s.world
	now := w.Now()
	for _, src := range w.Spawns {
		if !src.Due(now) {
			continue
		}
		h := w.Enemies.Create(src.Position, w.Tuning.Enemy.MaxHP)
		src.LastSpawnAt.Mark(now)
		s.eventDispatcher.Emit(event.EnemySpawned, now, event.EnemySpawnedData{
			Enemy:    h,
			Position: src.Position,
			PoolSize: w.Enemies.Size(),
		})
	}
}
