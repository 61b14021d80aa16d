// Package core provides fundamental types and utilities for the whale simulator.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

// Point is a cell position on the field. X grows to the right, Y grows down.
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Field is the fixed size of the play area in cells.
// It never changes for the lifetime of a round.
type Field struct {
	W, H int
}

// Contains returns true if p lies inside [0, W) x [0, H).
func (f Field) Contains(p Point) bool {
	return p.X >= 0 && p.X < f.W && p.Y >= 0 && p.Y < f.H
}

// Area returns the number of cells in the field.
func (f Field) Area() int {
	return f.W * f.H
}

// Rect represents an axis-aligned box used for layout.
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
