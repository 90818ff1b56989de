package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"go-tower-keep/internal/app"
	"go-tower-keep/internal/camera"
	"go-tower-keep/internal/config"
	"go-tower-keep/internal/tui"
)

var watchSpeed float64

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the autopilot play in the terminal",
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().Float64Var(&watchSpeed, "speed", 1, "game time multiplier")
}

func runWatch(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	opts, err := gameOptions(settings)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	// Projectiles expire at the edge of what the terminal shows.
	width, height := screen.Size()
	opts.Viewport = camera.New(float64(width)*config.TerminalCellWidth, float64(height)*config.TerminalCellHeight, 1)

	g, err := app.NewGame(opts)
	if err != nil {
		return err
	}
	spectator := tui.NewSpectator(screen, g)
	spectator.Speed = watchSpeed

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := spectator.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
