// internal/system/visual_effect.go
package system

import (
	"go-tower-keep/internal/entity"
)

// AnimationSystem flips enemy sprite frames at a fixed interval.
type AnimationSystem struct {
	world *entity.World
}

func NewAnimationSystem(world *entity.World) *AnimationSystem {
	return &AnimationSystem{world: world}
}

func (s *AnimationSystem) Update(deltaTime float64) {
	now := s.world.Now()
	tuning := s.world.Tuning.Animation
	for _, e := range s.world.Enemies.Alive() {
		if !e.LastFrameAt.IsSet() {
			e.LastFrameAt.Mark(now)
			continue
		}
		if e.LastFrameAt.Expired(now, tuning.EnemyFrameInterval) {
			e.Frame = (e.Frame + 1) % tuning.EnemyFrames
			e.LastFrameAt.Mark(now)
		}
	}
}
