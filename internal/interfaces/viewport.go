package interfaces

import "go-tower-keep/pkg/geom"

// Viewport maps between world and screen space.
type Viewport interface {
	WorldToScreen(world geom.Vector2) geom.Vector2
	ScreenToWorld(screen geom.Vector2) geom.Vector2
	IsInViewport(world geom.Vector2) bool
}
