package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"go-tower-keep/internal/config"
	"go-tower-keep/internal/state"
	"go-tower-keep/pkg/logger"
)

var skipMenu bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&skipMenu, "skip-menu", false, "start a run right away")
}

// AppGame adapts the state machine to ebiten.Game.
type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func runPlay(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	opts, err := gameOptions(settings)
	if err != nil {
		return err
	}
	store, closeRecords, err := openRecords(settings)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeRecords(); err != nil {
			logger.Component("main").WithError(err).Warn("close records")
		}
	}()

	session := &state.Session{Options: opts, Records: store}
	sm := state.NewStateMachine()
	if skipMenu {
		play, err := state.NewPlayState(sm, session)
		if err != nil {
			return err
		}
		sm.SetState(play)
	} else {
		sm.SetState(state.NewMenuState(sm, session))
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	return ebiten.RunGame(&AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	})
}
