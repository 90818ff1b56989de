package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go-tower-keep/internal/camera"
	"go-tower-keep/internal/config"
	"go-tower-keep/internal/defs"
	"go-tower-keep/internal/entity"
	"go-tower-keep/internal/event"
	"go-tower-keep/internal/input"
	"go-tower-keep/internal/utils"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) ofType(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

type harness struct {
	w           *entity.World
	cam         *camera.Camera
	in          *input.State
	rec         *recorder
	attacks     *AttackSystem
	player      *PlayerSystem
	enemies     *EnemySystem
	spawns      *SpawnSystem
	projectiles *ProjectileSystem
	tower       *TowerSystem
	anim        *AnimationSystem
	state       *StateSystem
}

// emptyLevel has no spawn sources so tests place every enemy themselves.
func emptyLevel() defs.LevelDefinition {
	level := defs.DefaultLevel()
	level.Spawns = nil
	level.Scheduled = nil
	return level
}

func newHarness(t *testing.T, level defs.LevelDefinition) *harness {
	t.Helper()
	w, err := entity.NewWorld(level, config.DefaultTuning(), utils.NewPRNGService(7))
	require.NoError(t, err)

	h := &harness{
		w:   w,
		cam: camera.New(config.ScreenWidth, config.ScreenHeight, config.CameraZoom),
		in:  input.NewState(),
		rec: &recorder{},
	}
	d := event.NewDispatcher()
	d.Subscribe(h.rec, event.AllTypes...)

	h.attacks = NewAttackSystem(w)
	h.player = NewPlayerSystem(w, h.attacks, h.cam, d)
	h.player.SetInput(h.in)
	h.enemies = NewEnemySystem(w, h.attacks, d)
	h.spawns = NewSpawnSystem(w, d)
	h.projectiles = NewProjectileSystem(w, h.cam, d)
	h.tower = NewTowerSystem(w, h.projectiles, d)
	h.anim = NewAnimationSystem(w)
	h.state = NewStateSystem(w, d)
	return h
}

// at advances the world clock to now.
func (h *harness) at(now float64) float64 {
	return h.w.Clock.Advance(now)
}
