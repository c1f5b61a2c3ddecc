// Package sim implements the Quantum Jumper simulation core.
// It contains no terminal, audio or storage code: the platform feeds it
// input and elapsed time, and reads back the world and emitted events.
package sim

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

// Rect is an axis-aligned box in world units (Y grows downward).
type Rect struct {
	X, Y float64
	W, H float64
}

// R creates a rectangle.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether two rectangles overlap.
// Touching edges do not count as overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() &&
		r.Right() > o.X &&
		r.Y < o.Bottom() &&
		r.Bottom() > o.Y
}

// OverlapsX reports whether the horizontal spans overlap.
func (r Rect) OverlapsX(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X
}

// Center returns the centre point.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Bounds is the visible world rectangle [0,W]x[0,H].
type Bounds struct {
	W, H float64
}

// ContainsPoint reports whether (x, y) lies inside the closed rectangle.
func (b Bounds) ContainsPoint(x, y float64) bool {
	return x >= 0 && x <= b.W && y >= 0 && y <= b.H
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
