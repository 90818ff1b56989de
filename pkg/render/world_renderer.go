package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-tower-keep/internal/component"
	"go-tower-keep/internal/config"
	"go-tower-keep/internal/defs"
	"go-tower-keep/internal/entity"
	"go-tower-keep/internal/interfaces"
	"go-tower-keep/pkg/geom"
)

// WorldRenderer draws a World with flat shapes, one box per sprite.
type WorldRenderer struct {
	viewport interfaces.Viewport
}

func NewWorldRenderer(viewport interfaces.Viewport) *WorldRenderer {
	return &WorldRenderer{viewport: viewport}
}

// Draw paints the whole world. Back to front: spawns, walls, tower base,
// enemies, player, slashes, projectiles, tower upper, hp bars.
func (r *WorldRenderer) Draw(screen *ebiten.Image, w *entity.World) {
	screen.Fill(config.BackgroundColor)
	now := w.Now()
	lib := w.Sprites

	for _, src := range w.Spawns {
		if !src.Active {
			continue
		}
		p := r.viewport.WorldToScreen(src.Position)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 6, config.SpawnColor, true)
	}

	for _, wall := range w.Walls {
		r.fillBox(screen, wall, config.WallColor)
	}

	tower := w.Tower
	baseColor := config.TowerBaseColor
	if tower.IsDead() {
		baseColor = DarkenColor(baseColor)
	} else if tower.Flash.Active(now, config.DamageFlashDuration) {
		baseColor = FlashColor(baseColor)
	}
	r.fillBox(screen, tower.Base, baseColor)

	enemySize := lib.MustSize(defs.SpriteEnemy)
	for _, e := range w.Enemies.Alive() {
		c := config.EnemyColor
		if e.Frame%2 == 1 {
			c = config.EnemyAltColor
		}
		if e.Flash.Active(now, config.DamageFlashDuration) {
			c = FlashColor(c)
		}
		box := geom.CenteredCollider(e.Position, enemySize)
		r.fillBox(screen, box, c)
		// Eye on the side the enemy walks towards.
		eye := e.Position.Add(geom.Vector2{X: e.FacingX() * enemySize.X / 4, Y: enemySize.Y / 4})
		p := r.viewport.WorldToScreen(eye)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 2, config.TextLightColor, true)
	}

	player := w.Player
	playerColor := config.PlayerColor
	if player.Flash.Active(now, config.DamageFlashDuration) {
		playerColor = FlashColor(playerColor)
	}
	r.fillBox(screen, w.PlayerCollider(), playerColor)

	for _, a := range w.Attacks {
		r.drawSlash(screen, a, lib.MustSize(defs.SpriteSlash), now, w.Tuning.Attack.AnimDuration)
	}

	projectileSize := lib.MustSize(defs.SpriteProjectile)
	for _, p := range w.Projectiles.Active() {
		r.fillBox(screen, geom.CenteredCollider(p.Position, projectileSize), config.ProjectileColor)
	}

	upperColor := config.TowerUpperColor
	if tower.IsDead() {
		upperColor = DarkenColor(upperColor)
	}
	if tower.Transparent {
		upperColor = WithAlpha(upperColor, config.TowerTransparentAlpha)
	}
	r.fillBox(screen, tower.Upper, upperColor)

	for _, e := range w.Enemies.Alive() {
		r.drawHPBar(screen, geom.CenteredCollider(e.Position, enemySize), e.Health.Fraction())
	}
	r.drawHPBar(screen, w.PlayerCollider(), player.Health.Fraction())
	r.drawHPBar(screen, tower.Upper, tower.Health.Fraction())
}

func (r *WorldRenderer) screenBox(c geom.Collider) (x, y, width, height float32) {
	tl := r.viewport.WorldToScreen(c.Pos)
	br := r.viewport.WorldToScreen(geom.Vector2{X: c.Right(), Y: c.Bottom()})
	return float32(tl.X), float32(tl.Y), float32(br.X - tl.X), float32(br.Y - tl.Y)
}

func (r *WorldRenderer) fillBox(screen *ebiten.Image, c geom.Collider, clr color.Color) {
	x, y, width, height := r.screenBox(c)
	vector.DrawFilledRect(screen, x, y, width, height, clr, false)
}

// drawSlash sweeps an arc in the attack direction, fading out over its lifetime.
func (r *WorldRenderer) drawSlash(screen *ebiten.Image, a *component.Attack, size geom.Vector2, now, duration float64) {
	alpha := a.Alpha(now, duration)
	if alpha <= 0 {
		return
	}
	center := r.viewport.WorldToScreen(a.Position)
	edge := r.viewport.WorldToScreen(a.Position.Add(geom.Vector2{X: size.X / 2}))
	radius := float32(edge.X - center.X)

	// Screen space is y-down, so the world angle flips sign.
	angle := float32(-math.Atan2(a.Direction.Y, a.Direction.X))
	var path vector.Path
	path.Arc(float32(center.X), float32(center.Y), radius, angle-math.Pi/4, angle+math.Pi/4, vector.Clockwise)

	sop := &vector.StrokeOptions{Width: 2, LineCap: vector.LineCapRound}
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, sop)
	clr := WithAlpha(config.SlashColor, uint8(alpha*255))
	for i := range vs {
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// drawHPBar draws a bar above the box, HPBarWidth of its width.
func (r *WorldRenderer) drawHPBar(screen *ebiten.Image, c geom.Collider, fraction float64) {
	x, y, width, _ := r.screenBox(c)
	barWidth := width * config.HPBarWidth
	barX := x + (width-barWidth)/2
	barY := y - config.HPBarOffsetY - config.HPBarHeight
	vector.DrawFilledRect(screen, barX, barY, barWidth, config.HPBarHeight, config.HPBarBackground, false)
	vector.DrawFilledRect(screen, barX, barY, barWidth*float32(fraction), config.HPBarHeight, config.HPBarForeground, false)
}

var white *ebiten.Image

func whitePixel() *ebiten.Image {
	if white == nil {
		white = ebiten.NewImage(1, 1)
		white.Fill(color.White)
	}
	return white
}
