// Package tui renders an autopilot run in the terminal.
package tui

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-tower-keep/internal/app"
	"go-tower-keep/internal/config"
	"go-tower-keep/internal/input"
	"go-tower-keep/internal/records"
	"go-tower-keep/pkg/geom"
)

const frameInterval = 16 * time.Millisecond

var (
	styleWall       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(70, 130, 180)).Bold(true)
	styleEnemy      = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleTower      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(194, 178, 128))
	styleTowerDead  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleProjectile = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleSpawn      = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleSlash      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleStatus     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	styleDefeat     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Spectator steps a game driven by the autopilot and draws each frame onto a
// tcell screen.
type Spectator struct {
	screen tcell.Screen
	game   *app.Game
	bot    *input.Bot

	// Speed multiplies simulated time per frame.
	Speed float64
	now   float64
}

func NewSpectator(screen tcell.Screen, game *app.Game) *Spectator {
	return &Spectator{
		screen: screen,
		game:   game,
		bot:    input.NewBot(),
		Speed:  1,
	}
}

// Step advances the run by one fixed frame.
func (s *Spectator) Step() {
	if s.game.Over() {
		return
	}
	s.game.SetInput(s.bot.Update(s.game.World, s.game.Viewport))
	s.game.Tick(s.now)
	s.now += config.FixedStepMs * s.Speed
}

// Run steps and draws until the run ends and the user quits with q, Esc or
// Ctrl-C, or ctx is done.
func (s *Spectator) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}
		case <-ticker.C:
			s.Step()
			s.Draw()
			s.screen.Show()
		}
	}
}

// Cell maps a world position to a terminal cell on a width x height screen
// centered on the world origin.
func Cell(pos geom.Vector2, width, height int) (x, y int) {
	x = width/2 + int(math.Floor(pos.X/config.TerminalCellWidth))
	y = height/2 - int(math.Ceil(pos.Y/config.TerminalCellHeight))
	return x, y
}

// Draw renders the current world without showing it.
func (s *Spectator) Draw() {
	s.screen.Clear()
	width, height := s.screen.Size()
	w := s.game.World

	put := func(pos geom.Vector2, r rune, style tcell.Style) {
		x, y := Cell(pos, width, height)
		// Row 0 is the status line.
		if x < 0 || x >= width || y < 1 || y >= height {
			return
		}
		s.screen.SetContent(x, y, r, nil, style)
	}
	fill := func(c geom.Collider, r rune, style tcell.Style) {
		for wy := c.Top(); wy > c.Bottom(); wy -= config.TerminalCellHeight {
			for wx := c.Left(); wx < c.Right(); wx += config.TerminalCellWidth {
				put(geom.Vector2{X: wx, Y: wy}, r, style)
			}
		}
	}

	for _, src := range w.Spawns {
		if src.Active {
			put(src.Position, 'O', styleSpawn)
		}
	}
	for _, wall := range w.Walls {
		fill(wall, '#', styleWall)
	}

	towerStyle := styleTower
	if w.Tower.IsDead() {
		towerStyle = styleTowerDead
	}
	fill(w.Tower.Base, '=', towerStyle)
	fill(w.Tower.Upper, '^', towerStyle)

	for _, a := range w.Attacks {
		put(a.Position.Add(a.Direction.Scale(config.TerminalCellWidth)), '~', styleSlash)
	}
	for _, e := range w.Enemies.Alive() {
		r := 'e'
		if e.Frame%2 == 1 {
			r = 'E'
		}
		put(e.Position, r, styleEnemy)
	}
	for _, p := range w.Projectiles.Active() {
		put(p.Position, '*', styleProjectile)
	}
	put(w.Player.Position, '@', stylePlayer)

	s.drawText(0, 0, s.statusLine(width), styleStatus)
	if s.game.Over() {
		msg := fmt.Sprintf(" DEFEAT after %s with %d kills - press q ", records.FormatDuration(s.game.Result().DurationMs), w.Player.Kills)
		s.drawText(max(0, (width-len(msg))/2), height/2, msg, styleDefeat)
	}
}

func (s *Spectator) statusLine(width int) string {
	w := s.game.World
	line := fmt.Sprintf(" %s  kills %d  hp %d/%d  tower %d/%d  enemies %d",
		records.FormatDuration(s.game.Result().DurationMs),
		w.Player.Kills,
		w.Player.Health.Value, w.Player.Health.Max,
		w.Tower.Health.Value, w.Tower.Health.Max,
		w.Enemies.AliveCount(),
	)
	for len(line) < width {
		line += " "
	}
	return line
}

func (s *Spectator) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}
