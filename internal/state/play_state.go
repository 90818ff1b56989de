// internal/state/play_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"go-tower-keep/internal/app"
	"go-tower-keep/internal/config"
	"go-tower-keep/internal/input"
	"go-tower-keep/internal/ui"
	"go-tower-keep/pkg/logger"
	"go-tower-keep/pkg/render"
)

var _ State = (*PlayState)(nil)

// PlayState runs the simulation on real frame time.
type PlayState struct {
	sm       *StateMachine
	session  *Session
	game     *app.Game
	input    *input.State
	renderer *render.WorldRenderer
	hud      *ui.HUD

	// now is the simulation clock in milliseconds.
	now       float64
	bestMs    int64
	bestKills int
	bestRead  bool
}

func NewPlayState(sm *StateMachine, session *Session) (*PlayState, error) {
	g, err := session.newGame()
	if err != nil {
		return nil, err
	}
	in := input.NewState()
	g.SetInput(in)
	return &PlayState{
		sm:       sm,
		session:  session,
		game:     g,
		input:    in,
		renderer: render.NewWorldRenderer(g.Viewport),
		hud:      ui.NewHUD(),
	}, nil
}

func (p *PlayState) Enter() {
	if p.bestRead {
		return
	}
	p.bestRead = true
	ms, kills, err := p.session.best()
	if err != nil {
		logger.Component("state").WithError(err).Warn("could not read best run")
		return
	}
	p.bestMs, p.bestKills = ms, kills
}

func (p *PlayState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.sm.SetState(NewPauseState(p.sm, p))
		return
	}

	p.now += min(deltaTime*1000, config.MaxDeltaMs)
	pollInput(p.input)
	p.game.Tick(p.now)

	if p.game.Over() {
		result := p.game.Result()
		logger.Component("state").WithFields(logrus.Fields{
			"run_id":      result.RunID.String(),
			"duration_ms": result.DurationMs,
			"kills":       result.Kills,
		}).Info("run over")
		p.sm.SetState(NewDefeatState(p.sm, p.session, p, result))
	}
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	w := p.game.World
	p.renderer.Draw(screen, w)
	p.hud.Draw(screen, ui.HUDData{
		PlayerHP:       w.Player.Health.Value,
		PlayerMaxHP:    w.Player.Health.Max,
		TowerHP:        w.Tower.Health.Value,
		TowerMaxHP:     w.Tower.Health.Max,
		ElapsedMs:      p.game.Result().DurationMs,
		Kills:          w.Player.Kills,
		BestDurationMs: p.bestMs,
		BestKills:      p.bestKills,
	})
}

func (p *PlayState) Exit() {}
