package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-tower-keep/internal/config"
	"go-tower-keep/internal/records"
)

const (
	hudMargin  = 12
	hudLineGap = 8
)

// HUDData is what the in-game overlay shows.
type HUDData struct {
	PlayerHP, PlayerMaxHP int
	TowerHP, TowerMaxHP   int
	ElapsedMs             float64
	Kills                 int
	BestDurationMs        int64
	BestKills             int
}

// HUD is the in-game overlay: hp bars top-left, run time and kills top-right.
type HUD struct {
	face   font.Face
	player *HealthBar
	tower  *HealthBar
}

func NewHUD() *HUD {
	face := basicfont.Face7x13
	player := NewHealthBar(hudMargin, hudMargin, "HP   ", config.PlayerColor, face)
	tower := NewHealthBar(hudMargin, hudMargin+player.Height()+hudLineGap, "TOWER", config.TowerBaseColor, face)
	return &HUD{face: face, player: player, tower: tower}
}

func (h *HUD) Draw(screen *ebiten.Image, d HUDData) {
	h.player.Draw(screen, d.PlayerHP, d.PlayerMaxHP)
	h.tower.Draw(screen, d.TowerHP, d.TowerMaxHP)

	lines := []string{
		fmt.Sprintf("Time  %s", records.FormatDuration(d.ElapsedMs)),
		fmt.Sprintf("Kills %d", d.Kills),
	}
	if d.BestDurationMs > 0 || d.BestKills > 0 {
		lines = append(lines, fmt.Sprintf("Best  %s / %d", records.FormatDuration(float64(d.BestDurationMs)), d.BestKills))
	}
	lineHeight := h.face.Metrics().Height.Ceil()
	y := hudMargin + lineHeight
	for _, line := range lines {
		w := text.BoundString(h.face, line).Dx()
		text.Draw(screen, line, h.face, config.ScreenWidth-hudMargin-w, y, config.TextLightColor)
		y += lineHeight + hudLineGap/2
	}
}
