package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-tower-keep/internal/config"
	"go-tower-keep/internal/records"
)

// DefeatData is the end-of-run summary.
type DefeatData struct {
	DurationMs float64
	Kills      int
	Outcome    records.Outcome
	// RecordsErr is set when the best run could not be read or written.
	RecordsErr error
}

// DefeatPanel darkens the frozen world and lists the run summary.
type DefeatPanel struct {
	face font.Face
}

func NewDefeatPanel() *DefeatPanel {
	return &DefeatPanel{face: basicfont.Face7x13}
}

func (p *DefeatPanel) Draw(screen *ebiten.Image, d DefeatData) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{0, 0, 0, 160}, false)

	lineHeight := p.face.Metrics().Height.Ceil() + 6
	y := b.Dy()/2 - 3*lineHeight
	DrawCentered(screen, p.face, "DEFEAT", y, config.DefeatTitleColor)
	y += 2 * lineHeight

	duration := fmt.Sprintf("You held out for %s", records.FormatDuration(d.DurationMs))
	if d.Outcome.NewDuration {
		duration += "  (new best!)"
	}
	DrawCentered(screen, p.face, duration, y, config.TextLightColor)
	y += lineHeight

	kills := fmt.Sprintf("Enemies killed: %d", d.Kills)
	if d.Outcome.NewKills {
		kills += "  (new best!)"
	}
	DrawCentered(screen, p.face, kills, y, config.TextLightColor)
	y += lineHeight

	if d.RecordsErr != nil {
		DrawCentered(screen, p.face, "Best run unavailable", y, config.TextLightColor)
	} else if d.Outcome.PreviousDurationMs > 0 || d.Outcome.PreviousKills > 0 {
		best := fmt.Sprintf("Previous best: %s, %d kills",
			records.FormatDuration(float64(d.Outcome.PreviousDurationMs)), d.Outcome.PreviousKills)
		DrawCentered(screen, p.face, best, y, config.TextLightColor)
	}
	y += 2 * lineHeight

	DrawCentered(screen, p.face, "Press R to play again", y, config.TextLightColor)
}
