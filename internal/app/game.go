// internal/app/game.go
package app

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"go-tower-keep/internal/camera"
	"go-tower-keep/internal/component"
	"go-tower-keep/internal/config"
	"go-tower-keep/internal/defs"
	"go-tower-keep/internal/entity"
	"go-tower-keep/internal/event"
	"go-tower-keep/internal/interfaces"
	"go-tower-keep/internal/system"
	"go-tower-keep/internal/utils"
	"go-tower-keep/pkg/logger"
)

// Options describe a run. Zero fields fall back to the defaults.
type Options struct {
	Level  *defs.LevelDefinition
	Tuning *config.Tuning
	// Seed 0 draws one from the wall clock.
	Seed int64
	// Viewport defaults to a camera the size of the window.
	Viewport interfaces.Viewport
}

// Game holds one run and drives its systems in a fixed order.
type Game struct {
	RunID           uuid.UUID
	World           *entity.World
	Viewport        interfaces.Viewport
	EventDispatcher *event.Dispatcher

	AttackSystem     *system.AttackSystem
	PlayerSystem     *system.PlayerSystem
	EnemySystem      *system.EnemySystem
	SpawnSystem      *system.SpawnSystem
	TowerSystem      *system.TowerSystem
	ProjectileSystem *system.ProjectileSystem
	AnimationSystem  *system.AnimationSystem
	StateSystem      *system.StateSystem

	listener *GameEventListener
	log      *logrus.Entry
}

// NewGame lays out the level and wires the systems.
func NewGame(opts Options) (*Game, error) {
	level := defs.DefaultLevel()
	if opts.Level != nil {
		level = *opts.Level
	}
	tuning := config.DefaultTuning()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}
	viewport := opts.Viewport
	if viewport == nil {
		viewport = camera.New(config.ScreenWidth, config.ScreenHeight, config.CameraZoom)
	}

	rng := utils.NewPRNGService(opts.Seed)
	world, err := entity.NewWorld(level, tuning, rng)
	if err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}

	runID := uuid.New()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		RunID:           runID,
		World:           world,
		Viewport:        viewport,
		EventDispatcher: eventDispatcher,
		log: logger.Component("game").WithFields(logrus.Fields{
			"run_id": runID.String(),
		}),
	}
	g.AttackSystem = system.NewAttackSystem(world)
	g.PlayerSystem = system.NewPlayerSystem(world, g.AttackSystem, viewport, eventDispatcher)
	g.EnemySystem = system.NewEnemySystem(world, g.AttackSystem, eventDispatcher)
	g.SpawnSystem = system.NewSpawnSystem(world, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(world, viewport, eventDispatcher)
	g.TowerSystem = system.NewTowerSystem(world, g.ProjectileSystem, eventDispatcher)
	g.AnimationSystem = system.NewAnimationSystem(world)
	g.StateSystem = system.NewStateSystem(world, eventDispatcher)

	g.listener = NewGameEventListener(g.log)
	eventDispatcher.Subscribe(g.listener, event.AllTypes...)

	g.log.WithFields(logrus.Fields{
		"level": level.Name,
		"seed":  rng.Seed(),
	}).Info("run started")
	return g, nil
}

// SetInput changes where the player reads its controls from. Nil leaves the
// player idle.
func (g *Game) SetInput(input interfaces.InputSource) {
	g.PlayerSystem.SetInput(input)
}

// Tick advances the run to now (milliseconds, monotonic). Once the player is
// dead further ticks do nothing.
func (g *Game) Tick(now float64) {
	if g.Over() {
		return
	}
	deltaTime := g.World.Clock.Advance(now)

	g.PlayerSystem.Update(deltaTime)
	g.EnemySystem.Update(deltaTime)
	g.SpawnSystem.Update(deltaTime)
	g.TowerSystem.Update(deltaTime)
	g.AttackSystem.Update(deltaTime)
	g.AnimationSystem.Update(deltaTime)
	g.StateSystem.Update(deltaTime)

	g.listener.ObservePool(now, g.World.Enemies)
}

// Over reports whether the run has ended.
func (g *Game) Over() bool {
	return g.World.State.Phase == component.PhaseDefeat
}

func (g *Game) Phase() component.Phase {
	return g.World.State.Phase
}

// Stats returns the counters collected so far.
func (g *Game) Stats() RunStats {
	return g.listener.Stats()
}

// Result summarizes the run. Before the player dies the duration runs up to
// the last tick.
func (g *Game) Result() RunResult {
	w := g.World
	end := w.Now()
	if g.Over() {
		end = w.State.EndedAt
	}
	duration := 0.0
	if w.Clock.Started() {
		duration = float64(int64(end - w.Clock.StartTime()))
	}
	return RunResult{
		RunID:      g.RunID,
		DurationMs: duration,
		Kills:      w.Player.Kills,
		Stats:      g.Stats(),
	}
}
