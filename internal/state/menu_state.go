// internal/state/menu_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"

	"go-tower-keep/internal/config"
	"go-tower-keep/internal/input"
	"go-tower-keep/internal/interfaces"
	"go-tower-keep/internal/records"
	"go-tower-keep/internal/ui"
	"go-tower-keep/pkg/logger"
)

var _ State = (*MenuState)(nil)

// MenuState is the title screen.
type MenuState struct {
	sm      *StateMachine
	session *Session
	input   *input.State
	best    string
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session, input: input.NewState()}
}

func (m *MenuState) Enter() {
	ms, kills, err := m.session.best()
	if err != nil {
		logger.Component("state").WithError(err).Warn("could not read best run")
		return
	}
	if ms > 0 || kills > 0 {
		m.best = fmt.Sprintf("Best run: %s, %d kills", records.FormatDuration(float64(ms)), kills)
	}
}

func (m *MenuState) Update(deltaTime float64) {
	pollInput(m.input)
	start := inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		m.input.Clicked(interfaces.MouseLeft)
	if !start {
		return
	}
	play, err := NewPlayState(m.sm, m.session)
	if err != nil {
		logger.Component("state").WithError(err).Error("could not start a run")
		return
	}
	m.sm.SetState(play)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	y := config.ScreenHeight / 3
	ui.DrawCentered(screen, face, config.WindowTitle, y, config.TextLightColor)
	ui.DrawCentered(screen, face, "WASD to move, left click to slash. Keep the tower standing.", y+40, config.TextLightColor)
	if m.best != "" {
		ui.DrawCentered(screen, face, m.best, y+70, config.TextLightColor)
	}
	ui.DrawCentered(screen, face, "Press Space or click to start", y+120, config.TextLightColor)
}

func (m *MenuState) Exit() {}
