// pkg/geom/collision.go
package geom

// Overlaps reports whether two top-left anchored colliders intersect.
// Boxes that only touch along an edge count as overlapping.
//
// A and B do not overlap when A lies fully left of B (a.right < b.left) or
// fully below B (a.bottom > b.top); the same test runs with roles swapped.
func Overlaps(a, b Collider) bool {
	if a.Pos.X+a.Size.X < b.Pos.X || a.Pos.Y-a.Size.Y > b.Pos.Y {
		return false
	}
	if b.Pos.X+b.Size.X < a.Pos.X || b.Pos.Y-b.Size.Y > a.Pos.Y {
		return false
	}
	return true
}

// AxisCollision tells which axis of a proposed move is blocked.
type AxisCollision struct {
	X, Y bool
}

// Any reports whether at least one axis is blocked.
func (c AxisCollision) Any() bool { return c.X || c.Y }

// Both reports whether both axes are blocked.
func (c AxisCollision) Both() bool { return c.X && c.Y }

// Or accumulates blocked flags across several obstacles.
func (c AxisCollision) Or(o AxisCollision) AxisCollision {
	return AxisCollision{X: c.X || o.X, Y: c.Y || o.Y}
}

// ProbeAxisMovement resolves a move one axis at a time. It builds two
// hypothetical boxes of the given size, one at (newPos.X, oldPos.Y) and one at
// (oldPos.X, newPos.Y), both centered, and tests each against ref.
func ProbeAxisMovement(newPos, oldPos, size Vector2, ref Collider) AxisCollision {
	movedX := CenteredCollider(Vector2{X: newPos.X, Y: oldPos.Y}, size)
	movedY := CenteredCollider(Vector2{X: oldPos.X, Y: newPos.Y}, size)
	return AxisCollision{
		X: Overlaps(ref, movedX),
		Y: Overlaps(ref, movedY),
	}
}

// ProbeAgainst runs ProbeAxisMovement against several obstacles, OR-ing the
// results and stopping early once both axes are blocked.
func ProbeAgainst(newPos, oldPos, size Vector2, obstacles []Collider) AxisCollision {
	var acc AxisCollision
	for _, o := range obstacles {
		acc = acc.Or(ProbeAxisMovement(newPos, oldPos, size, o))
		if acc.Both() {
			break
		}
	}
	return acc
}

// UpdatePositionAfterCollision commits the unblocked axes of newPos into pos
// and keeps the old value on blocked ones, which lets movers slide along walls.
func UpdatePositionAfterCollision(pos *Vector2, newPos Vector2, c AxisCollision) {
	if !c.X {
		pos.X = newPos.X
	}
	if !c.Y {
		pos.Y = newPos.Y
	}
}
