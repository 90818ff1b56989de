// internal/ui/health_bar.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	barWidth       = 160
	barHeight      = 12
	barBorderWidth = 1
	barLabelGap    = 6
)

// HealthBar is a labeled hp bar with the numbers drawn to its right.
type HealthBar struct {
	X, Y  float32
	Label string
	Fill  color.RGBA
	face  font.Face
}

func NewHealthBar(x, y float32, label string, fill color.RGBA, face font.Face) *HealthBar {
	return &HealthBar{X: x, Y: y, Label: label, Fill: fill, face: face}
}

// Draw renders hp out of maxHP.
func (b *HealthBar) Draw(screen *ebiten.Image, hp, maxHP int) {
	labelWidth := float32(text.BoundString(b.face, b.Label).Dx())
	text.Draw(screen, b.Label, b.face, int(b.X), int(b.Y+barHeight-2), color.White)

	x := b.X + labelWidth + barLabelGap
	vector.StrokeRect(screen, x, b.Y, barWidth, barHeight, barBorderWidth, color.White, false)

	fraction := float32(0)
	if maxHP > 0 {
		fraction = float32(hp) / float32(maxHP)
	}
	if fraction > 0 {
		inner := float32(barWidth - barBorderWidth*2)
		vector.DrawFilledRect(screen, x+barBorderWidth, b.Y+barBorderWidth, inner*fraction, barHeight-barBorderWidth*2, b.Fill, false)
	}

	numbers := fmt.Sprintf("%d/%d", hp, maxHP)
	text.Draw(screen, numbers, b.face, int(x+barWidth+barLabelGap), int(b.Y+barHeight-2), color.White)
}

// Height is the vertical space the bar takes.
func (b *HealthBar) Height() float32 {
	return barHeight
}
