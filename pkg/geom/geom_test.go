package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorOps(t *testing.T) {
	a := Vec(3, 4)
	b := Vec(1, -2)

	assert.Equal(t, Vec(4, 2), a.Add(b))
	assert.Equal(t, Vec(2, 6), a.Sub(b))
	assert.Equal(t, Vec(6, 8), a.Scale(2))
	assert.Equal(t, -5.0, a.Dot(b))
	assert.Equal(t, 5.0, a.Length())
	assert.InDelta(t, 1.0, a.Normalize().Length(), 1e-12)
	assert.Equal(t, Vec(3, 4), a, "operations must not mutate the receiver")
}

func TestNormalizeZeroVector(t *testing.T) {
	n := Vector2{}.Normalize()
	assert.Equal(t, Vector2{}, n)
	assert.False(t, math.IsNaN(n.X) || math.IsNaN(n.Y))
}

func TestDirection(t *testing.T) {
	target := Vec(10, 0)
	from := Vec(0, 0)
	assert.Equal(t, Vec(1, 0), target.Direction(from))
	assert.Equal(t, Vector2{}, from.Direction(from))
}

func TestMoveTowardsDoesNotOvershoot(t *testing.T) {
	p := Vec(0, 0)
	assert.Equal(t, Vec(3, 0), p.MoveTowards(Vec(10, 0), 3))
	assert.Equal(t, Vec(10, 0), p.MoveTowards(Vec(10, 0), 30))
	assert.Equal(t, p, p.MoveTowards(p, 5))
}

func TestAngleBetweenVectors(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector2
		want float64
	}{
		{"same", Vec(1, 0), Vec(5, 0), 0},
		{"perpendicular", Vec(1, 0), Vec(0, 2), math.Pi / 2},
		{"opposite", Vec(1, 0), Vec(-1, 0), math.Pi},
		{"degenerate", Vec(0, 0), Vec(1, 0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AngleBetweenVectors(tt.a, tt.b), 1e-9)
		})
	}
}

func TestRotationAngleFullCircle(t *testing.T) {
	assert.InDelta(t, 0, RotationAngle(Vec(1, 0)), 1e-9)
	assert.InDelta(t, math.Pi/2, RotationAngle(Vec(0, -1)), 1e-9)
	assert.InDelta(t, 3*math.Pi/2, RotationAngle(Vec(0, 1)), 1e-9)
}

func TestAnchorRoundTrip(t *testing.T) {
	centers := []Vector2{Vec(0, 0), Vec(-16, 12), Vec(100.5, -33.25)}
	sizes := []Vector2{Vec(16, 16), Vec(32, 24), Vec(0, 0)}
	for _, c := range centers {
		for _, s := range sizes {
			col := CenteredCollider(c, s)
			assert.Equal(t, s, col.Size)
			assert.Equal(t, c, CenterFromTopLeft(col.Pos, col.Size))
			assert.Equal(t, c, col.Center())
		}
	}
}

func TestTopLeftConversion(t *testing.T) {
	// tower base: centered at (0,-12), 32x24 -> top-left (-16, 0)
	col := CenteredCollider(Vec(0, -12), Vec(32, 24))
	assert.Equal(t, Vec(-16, 0), col.Pos)
	assert.Equal(t, -16.0, col.Left())
	assert.Equal(t, 16.0, col.Right())
	assert.Equal(t, 0.0, col.Top())
	assert.Equal(t, -24.0, col.Bottom())
}

func TestOverlaps(t *testing.T) {
	base := CenteredCollider(Vec(0, 0), Vec(10, 10))
	tests := []struct {
		name   string
		center Vector2
		want   bool
	}{
		{"same place", Vec(0, 0), true},
		{"partial", Vec(6, 6), true},
		{"touching edge", Vec(10, 0), true},
		{"right of", Vec(10.5, 0), false},
		{"left of", Vec(-10.5, 0), false},
		{"above", Vec(0, 10.5), false},
		{"below", Vec(0, -10.5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := CenteredCollider(tt.center, Vec(10, 10))
			assert.Equal(t, tt.want, Overlaps(base, other))
			assert.Equal(t, tt.want, Overlaps(other, base), "overlap must be symmetric")
		})
	}
}

func TestProbeAxisMovement(t *testing.T) {
	wall := CenteredCollider(Vec(20, 0), Vec(10, 10))
	size := Vec(10, 10)

	t.Run("no collision", func(t *testing.T) {
		got := ProbeAxisMovement(Vec(1, 1), Vec(0, 0), size, wall)
		assert.Equal(t, AxisCollision{}, got)
		assert.False(t, got.Any())
	})

	t.Run("x only", func(t *testing.T) {
		// moving right into the wall while also drifting up
		got := ProbeAxisMovement(Vec(11, 20), Vec(0, 20), size, CenteredCollider(Vec(20, 20), Vec(10, 10)))
		assert.Equal(t, AxisCollision{X: true, Y: false}, got)
	})

	t.Run("y only", func(t *testing.T) {
		floor := CenteredCollider(Vec(0, -20), Vec(40, 10))
		got := ProbeAxisMovement(Vec(10, -11), Vec(10, 0), size, floor)
		assert.Equal(t, AxisCollision{X: false, Y: true}, got)
	})

	t.Run("both", func(t *testing.T) {
		got := ProbeAxisMovement(Vec(21, 1), Vec(19, -1), size, wall)
		assert.True(t, got.Both())
	})
}

func TestProbeAgainstAccumulates(t *testing.T) {
	size := Vec(10, 10)
	obstacles := []Collider{
		CenteredCollider(Vec(11, 0), Vec(10, 10)),  // blocks x
		CenteredCollider(Vec(0, -11), Vec(10, 10)), // blocks y
	}
	got := ProbeAgainst(Vec(1, -1), Vec(-5, 5), size, obstacles)
	assert.Equal(t, AxisCollision{X: true, Y: true}, got)
}

func TestUpdatePositionAfterCollisionSlides(t *testing.T) {
	pos := Vec(0, 0)
	UpdatePositionAfterCollision(&pos, Vec(5, 7), AxisCollision{X: true})
	assert.Equal(t, Vec(0, 7), pos)

	UpdatePositionAfterCollision(&pos, Vec(9, 9), AxisCollision{X: true, Y: true})
	assert.Equal(t, Vec(0, 7), pos)

	UpdatePositionAfterCollision(&pos, Vec(9, 9), AxisCollision{})
	assert.Equal(t, Vec(9, 9), pos)
}
