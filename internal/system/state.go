// internal/system/state.go
package system

import (
	"go-tower-keep/internal/component"
	"go-tower-keep/internal/entity"
	"go-tower-keep/internal/event"
	"go-tower-keep/pkg/logger"
)

// StateSystem ends the run once the player has no hp left.
type StateSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(world *entity.World, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

func (s *StateSystem) Update(deltaTime float64) {
	w := s.world
	if w.State.Phase != component.PhasePlaying || !w.Player.Health.IsDead() {
		return
	}
	s.SwitchToDefeat()
}

// SwitchToDefeat freezes the run at the current frame.
func (s *StateSystem) SwitchToDefeat() {
	w := s.world
	w.State.Phase = component.PhaseDefeat
	w.State.EndedAt = w.Now()
	logger.Component("state").WithField("kills", w.Player.Kills).Debug("player died")
	s.eventDispatcher.Emit(event.PlayerDied, w.Now(), event.PlayerDiedData{
		Kills:      w.Player.Kills,
		DurationMs: w.Elapsed(),
	})
}

func (s *StateSystem) Current() component.Phase {
	return s.world.State.Phase
}
