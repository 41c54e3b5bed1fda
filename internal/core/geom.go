// Package core provides fundamental types and utilities for the breaker
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in play-field units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length.
// A near-zero vector falls back to the unit X vector to keep
// downstream math free of division by zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l < 1e-6 {
		return Vec2{X: 1, Y: 0}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rect is an axis-aligned rectangle identified by its center.
type Rect struct {
	X, Y float64 // Center position
	W, H float64 // Width and height
}

// NewRect creates a rectangle centered at (x, y).
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.X - r.W/2
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W/2
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y - r.H/2
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H/2
}

// Overlaps reports whether the centers of r and o are within their
// combined half-extents on both axes. Used for the box-vs-box checks
// (perk collection, bullet hits) where no contact normal is needed.
func (r Rect) Overlaps(o Rect) bool {
	return math.Abs(r.X-o.X) <= (r.W+o.W)/2 && math.Abs(r.Y-o.Y) <= (r.H+o.H)/2
}

// Clamp restricts an integer value to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// CircleRectCollision tests a circle against an axis-aligned rectangle.
// On contact it returns the collision normal (from the nearest rectangle
// point toward the circle center, unit length) and the penetration depth
// (radius minus distance). When the circle center sits exactly on the
// nearest point the normal defaults to straight up.
func CircleRectCollision(r Rect, center Vec2, radius float64) (hit bool, normal Vec2, penetration float64) {
	nearest := Vec2{
		X: ClampF(center.X, r.Left(), r.Right()),
		Y: ClampF(center.Y, r.Top(), r.Bottom()),
	}
	d := center.Sub(nearest)
	d2 := d.Dot(d)
	if d2 > radius*radius {
		return false, Vec2{}, 0
	}

	dist := math.Sqrt(math.Max(d2, 1e-6))
	if dist > 1e-4 {
		normal = d.Scale(1 / dist)
	} else {
		normal = Vec2{X: 0, Y: -1} // Up, in screen coordinates
	}
	return true, normal, radius - dist
}

// Reflect mirrors vel about the given unit normal and rescales the
// result to speed. A near-zero velocity is returned unchanged.
func Reflect(vel, normal Vec2, speed float64) Vec2 {
	sp := vel.Length()
	if sp < 1e-6 {
		return vel
	}
	dir := vel.Scale(1 / sp)
	r := dir.Sub(normal.Scale(2 * dir.Dot(normal)))
	return r.Normalize().Scale(speed)
}
