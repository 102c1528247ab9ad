// Package geom holds the small float32 value types shared by entities, physics and rendering.
package geom

import "math"

// Vec2 is a 2D vector. +Y points down the screen.
type Vec2 struct {
	X, Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the euclidean length of v.
func (v Vec2) Len() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y float32
	W, H float32
}

// XY returns the rectangle origin.
func (r Rect) XY() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}
