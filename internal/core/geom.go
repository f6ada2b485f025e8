// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in screen cells.
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

// RectF is an axis-aligned box in world pixels, described by its centre.
// World coordinates grow right and down, like the viewport.
type RectF struct {
	CX, CY float64 // Centre
	W, H   float64
}

// Left returns the x-coordinate of the left edge.
func (r RectF) Left() float64 { return r.CX - r.W/2 }

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 { return r.CX + r.W/2 }

// Top returns the y-coordinate of the top edge.
func (r RectF) Top() float64 { return r.CY - r.H/2 }

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 { return r.CY + r.H/2 }

// OverlapsX reports whether the horizontal spans of two boxes overlap.
// Touching edges do not count.
func (r RectF) OverlapsX(other RectF) bool {
	return r.Left() < other.Right() && other.Left() < r.Right()
}

// Scale maps a world-space box into screen cells using per-axis factors.
// Any box with a positive size covers at least one cell.
func (r RectF) Scale(sx, sy float64) Rect {
	x0 := int(math.Floor(r.Left() * sx))
	y0 := int(math.Floor(r.Top() * sy))
	x1 := int(math.Ceil(r.Right() * sx))
	y1 := int(math.Ceil(r.Bottom() * sy))
	return NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0, 1))
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
