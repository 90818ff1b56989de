package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-tower-keep/internal/app"
	"go-tower-keep/internal/ui"
	"go-tower-keep/pkg/logger"
)

var _ State = (*DefeatState)(nil)

// DefeatState shows the frozen last frame with the run summary and stores the
// best run once on entry.
type DefeatState struct {
	sm      *StateMachine
	session *Session
	last    State
	result  app.RunResult
	panel   *ui.DefeatPanel
	data    ui.DefeatData
}

func NewDefeatState(sm *StateMachine, session *Session, last State, result app.RunResult) *DefeatState {
	return &DefeatState{
		sm:      sm,
		session: session,
		last:    last,
		result:  result,
		panel:   ui.NewDefeatPanel(),
		data: ui.DefeatData{
			DurationMs: result.DurationMs,
			Kills:      result.Kills,
		},
	}
}

func (d *DefeatState) Enter() {
	outcome, err := d.session.submit(d.result)
	if err != nil {
		logger.Component("state").WithError(err).Warn("could not store best run")
		d.data.RecordsErr = err
		return
	}
	d.data.Outcome = outcome
}

func (d *DefeatState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return
	}
	next, err := NewPlayState(d.sm, d.session)
	if err != nil {
		logger.Component("state").WithError(err).Error("could not start a new run")
		return
	}
	d.sm.SetState(next)
}

func (d *DefeatState) Draw(screen *ebiten.Image) {
	d.last.Draw(screen)
	d.panel.Draw(screen, d.data)
}

func (d *DefeatState) Exit() {}
