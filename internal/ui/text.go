package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawCentered draws s horizontally centered on the screen with its baseline at y.
func DrawCentered(screen *ebiten.Image, face font.Face, s string, y int, clr color.Color) {
	w := text.BoundString(face, s).Dx()
	text.Draw(screen, s, face, (screen.Bounds().Dx()-w)/2, y, clr)
}
