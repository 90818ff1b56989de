// pkg/geom/collider.go
package geom

// Collider is an axis-aligned box anchored at its top-left corner in world
// space. Because the world is y-up, the top edge is Pos.Y and the box extends
// downward to Pos.Y - Size.Y.
//
// All collision code works on top-left anchored colliders. Entities store
// their center, so build colliders with CenteredCollider.
type Collider struct {
	Pos       Vector2 `json:"pos"`
	Size      Vector2 `json:"size"`
	IsTrigger bool    `json:"is_trigger"`
}

// TopLeftCollider builds a collider whose Pos is already the top-left corner.
func TopLeftCollider(topLeft, size Vector2) Collider {
	return Collider{Pos: topLeft, Size: size}
}

// CenteredCollider builds a collider around a center point.
func CenteredCollider(center, size Vector2) Collider {
	return Collider{Pos: TopLeftFromCenter(center, size), Size: size}
}

// TriggerCollider builds a non-blocking centered collider.
func TriggerCollider(center, size Vector2) Collider {
	c := CenteredCollider(center, size)
	c.IsTrigger = true
	return c
}

// TopLeftFromCenter converts a center anchor to the top-left anchor.
func TopLeftFromCenter(center, size Vector2) Vector2 {
	return Vector2{X: center.X - size.X/2, Y: center.Y + size.Y/2}
}

// CenterFromTopLeft is the inverse of TopLeftFromCenter.
func CenterFromTopLeft(topLeft, size Vector2) Vector2 {
	return Vector2{X: topLeft.X + size.X/2, Y: topLeft.Y - size.Y/2}
}

// Center returns the geometric center of the box.
func (c Collider) Center() Vector2 {
	return CenterFromTopLeft(c.Pos, c.Size)
}

func (c Collider) Left() float64   { return c.Pos.X }
func (c Collider) Right() float64  { return c.Pos.X + c.Size.X }
func (c Collider) Top() float64    { return c.Pos.Y }
func (c Collider) Bottom() float64 { return c.Pos.Y - c.Size.Y }

// MovedTo returns a copy of c re-centered at center.
func (c Collider) MovedTo(center Vector2) Collider {
	c.Pos = TopLeftFromCenter(center, c.Size)
	return c
}
