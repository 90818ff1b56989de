// internal/camera/camera.go
package camera

import (
	"go-tower-keep/internal/interfaces"
	"go-tower-keep/pkg/geom"
)

// Camera looks at Position from a screen of Width x Height pixels. Screen y
// grows downward, world y grows upward.
type Camera struct {
	Width, Height float64
	// Zoom is pixels per world unit.
	Zoom     float64
	Position geom.Vector2
}

var _ interfaces.Viewport = (*Camera)(nil)

// New returns a camera centered on the world origin.
func New(width, height, zoom float64) *Camera {
	return &Camera{Width: width, Height: height, Zoom: zoom}
}

func (c *Camera) WorldToScreen(p geom.Vector2) geom.Vector2 {
	return geom.Vector2{
		X: (p.X-c.Position.X)*c.Zoom + c.Width/2,
		Y: c.Height/2 - (p.Y-c.Position.Y)*c.Zoom,
	}
}

func (c *Camera) ScreenToWorld(s geom.Vector2) geom.Vector2 {
	return geom.Vector2{
		X: c.Position.X + (s.X-c.Width/2)/c.Zoom,
		Y: c.Position.Y - (s.Y-c.Height/2)/c.Zoom,
	}
}

// IsInViewport reports whether p lands on the screen, edges included.
func (c *Camera) IsInViewport(p geom.Vector2) bool {
	s := c.WorldToScreen(p)
	return s.X >= 0 && s.X <= c.Width && s.Y >= 0 && s.Y <= c.Height
}

// WorldSize is the visible world extent.
func (c *Camera) WorldSize() geom.Vector2 {
	return geom.Vec(c.Width/c.Zoom, c.Height/c.Zoom)
}
