// Package types holds the grid coordinate model shared by the simulation
// and the renderers.
package types

import "golang.org/x/exp/constraints"

// Point is a cell coordinate or a unit step on the grid.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Wrap reduces v into [0, n). n must be positive.
func Wrap[T constraints.Integer](v, n T) T {
	return ((v % n) + n) % n
}

// Grid represents the game grid dimensions. Both axes wrap around.
type Grid struct {
	Width  int
	Height int
}

// Wrap folds p back onto the grid, each axis independently.
func (g Grid) Wrap(p Point) Point {
	return Point{X: Wrap(p.X, g.Width), Y: Wrap(p.Y, g.Height)}
}

// Contains reports whether p lies on the grid without wrapping.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}
