// Package core provides fundamental types shared by the simulation and the
// terminal platform. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Vec2 is a 2D vector in world units. The play area is centered at the
// origin with the y axis pointing up.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// AABB is an axis-aligned bounding box described by its center and
// half-extents, used for collision detection.
type AABB struct {
	Center Vec2
	Half   Vec2 // Half-extents: half width and half height
}

// NewAABB builds a bounding box from a center point, a base size and a scale.
// The half-extents are size*scale/2 on each axis.
func NewAABB(center, size, scale Vec2) AABB {
	return AABB{
		Center: center,
		Half:   Vec2{X: size.X * scale.X / 2, Y: size.Y * scale.Y / 2},
	}
}

// Overlaps reports whether two boxes intersect. The test is over closed
// intervals: boxes that touch exactly at an edge count as overlapping.
func (a AABB) Overlaps(b AABB) bool {
	if AbsF(a.Center.X-b.Center.X)*2 > (a.Half.X+b.Half.X)*2 {
		return false
	}
	return AbsF(a.Center.Y-b.Center.Y)*2 <= (a.Half.Y+b.Half.Y)*2
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
