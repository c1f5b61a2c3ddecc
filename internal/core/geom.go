// Package core provides the terminal-facing primitives shared by the game
// adapter and the platform layer. It contains no external dependencies
// (especially no Bubble Tea) so game presentation stays testable.
package core

import "math"

// Rect is an axis-aligned box in screen cells.
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

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Viewport maps continuous world coordinates onto a block of screen cells.
// The world rectangle [0,WorldW]x[0,WorldH] is stretched over Area.
type Viewport struct {
	WorldW, WorldH float64
	Area           Rect
}

// NewViewport creates a viewport over area.
func NewViewport(worldW, worldH float64, area Rect) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, Area: area}
}

// ToCell converts a world point to the cell containing it.
// Points outside the world map to cells outside Area.
func (v Viewport) ToCell(x, y float64) (int, int) {
	cx := v.Area.X + int(math.Floor(x*float64(v.Area.W)/v.WorldW))
	cy := v.Area.Y + int(math.Floor(y*float64(v.Area.H)/v.WorldH))
	return cx, cy
}

// Span converts a world box to the cells it covers. Every non-empty box
// covers at least one cell so thin platforms stay visible.
func (v Viewport) Span(x, y, w, h float64) Rect {
	x0, y0 := v.ToCell(x, y)
	x1, y1 := v.ToCell(x+w, y+h)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Visible reports whether the cell lies inside the viewport area.
func (v Viewport) Visible(x, y int) bool {
	return v.Area.Contains(x, y)
}
