// pkg/geom/vector.go
package geom

import "math"

// Vector2 is a 2D vector in world units. The world is cartesian: y grows upward.
// Vectors are values, so copying one is a clone.
type Vector2 struct {
	X float64 `json:"x" mapstructure:"x"`
	Y float64 `json:"y" mapstructure:"y"`
}

// Vec constructs a Vector2.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Scale(k float64) Vector2 {
	return Vector2{X: v.X * k, Y: v.Y * k}
}

func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector pointing the same way as v.
// A zero-length vector normalizes to the zero vector instead of NaN, so a
// mover sitting exactly on its target simply does not move.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / l, Y: v.Y / l}
}

// Direction returns the unit vector pointing from `from` toward v.
func (v Vector2) Direction(from Vector2) Vector2 {
	return v.Sub(from).Normalize()
}

// DistanceTo returns the straight-line distance between v and o.
func (v Vector2) DistanceTo(o Vector2) float64 {
	return v.Sub(o).Length()
}

// MoveTowards returns v advanced by at most `step` units toward target.
// It never overshoots: when the target is closer than step, target is returned.
func (v Vector2) MoveTowards(target Vector2, step float64) Vector2 {
	d := target.Sub(v)
	l := d.Length()
	if l <= step || l == 0 {
		return target
	}
	return v.Add(d.Scale(step / l))
}

// MoveAlong returns v advanced by `step` units along direction. The direction
// does not need to be normalized.
func (v Vector2) MoveAlong(direction Vector2, step float64) Vector2 {
	return v.Add(direction.Normalize().Scale(step))
}

// AngleBetweenVectors returns the unsigned angle between a and b in [0, π].
// Zero-length inputs yield 0.
func AngleBetweenVectors(a, b Vector2) float64 {
	den := a.Length() * b.Length()
	if den == 0 {
		return 0
	}
	c := a.Dot(b) / den
	// rounding can push the cosine slightly outside [-1, 1]
	c = math.Max(-1, math.Min(1, c))
	return math.Acos(c)
}

// RotationAngle converts a direction into a full-circle rotation angle in
// [0, 2π) measured from +x, for screen-space sprite rotation (screen y grows
// downward, hence the flip when the direction points up in world space).
func RotationAngle(direction Vector2) float64 {
	angle := AngleBetweenVectors(Vec(1, 0), direction)
	if direction.Y > 0 {
		angle = 2*math.Pi - angle
	}
	return angle
}
