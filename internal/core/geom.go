// Package core provides fundamental types and utilities shared by the
// simulation and the display backends. It has no dependency on any backend
// library so game logic stays headless and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether two rectangles share any pixel. Edges that only
// touch do not count, and an empty rectangle intersects nothing.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Scale maps a rectangle from one coordinate space into another by
// independent horizontal and vertical factors. Edges are floored so that
// adjacent rectangles stay adjacent after scaling.
func (r Rect) Scale(sx, sy float64) Rect {
	x0 := int(math.Floor(float64(r.X) * sx))
	y0 := int(math.Floor(float64(r.Y) * sy))
	x1 := int(math.Floor(float64(r.Right()) * sx))
	y1 := int(math.Floor(float64(r.Bottom()) * sy))
	if x1 <= x0 && r.W > 0 {
		x1 = x0 + 1
	}
	if y1 <= y0 && r.H > 0 {
		y1 = y0 + 1
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
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
