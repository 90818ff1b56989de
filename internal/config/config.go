// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	WindowTitle  = "Tower Keep"

	// Pixels per world unit.
	CameraZoom = 3.0

	// MaxDeltaMs caps a single frame step fed to the simulation by the
	// windowed driver (a dragged window can stall for seconds).
	MaxDeltaMs = 60.0

	// FixedStepMs is the frame step used by the headless drivers.
	FixedStepMs = 1000.0 / 60.0

	HPBarHeight  = 4
	HPBarOffsetY = 5
	HPBarWidth   = 0.7 // fraction of the sprite width

	TextOffsetY = 16

	// DamageFlashDuration is how long a hit entity stays tinted.
	DamageFlashDuration = 120.0

	// Terminal spectator: world units per terminal cell.
	TerminalCellWidth  = 4.0
	TerminalCellHeight = 8.0

	// Records keys in the external key-value store.
	BestDurationKey = "towerkeep.bestDurationMs"
	BestKillsKey    = "towerkeep.bestKills"
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	WallColor        = color.RGBA{128, 128, 128, 255}
	PlayerColor      = color.RGBA{70, 130, 180, 255}
	EnemyColor       = color.RGBA{220, 60, 60, 255}
	EnemyAltColor    = color.RGBA{180, 40, 40, 255}
	TowerBaseColor   = color.RGBA{194, 178, 128, 255}
	TowerUpperColor  = color.RGBA{160, 150, 110, 255}
	ProjectileColor  = color.RGBA{255, 215, 0, 255}
	SlashColor       = color.RGBA{240, 240, 240, 255}
	SpawnColor       = color.RGBA{180, 50, 230, 160}
	HPBarBackground  = color.RGBA{255, 255, 255, 64}
	HPBarForeground  = color.RGBA{0, 255, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	DefeatTitleColor = color.RGBA{220, 60, 60, 255}

	// TowerTransparentAlpha is applied to the upper tower while it occludes
	// the player or an enemy.
	TowerTransparentAlpha uint8 = 96
)
