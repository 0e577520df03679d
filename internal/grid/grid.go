// Package grid provides a dense, fixed-size 2D grid.
package grid

import "fmt"

// Grid is a width x height array of T indexed by (x, y).
// Cells are stored column by column so ForEach walks memory in order.
type Grid[T any] struct {
	width, height int
	cells         []T
}

// New allocates a grid with every cell set to fill.
func New[T any](width, height int, fill T) *Grid[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("grid: negative size %dx%d", width, height))
	}
	g := &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}
	g.Fill(fill)
	return g
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Exists reports whether (x, y) lies inside the grid.
func (g *Grid[T]) Exists(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the value at (x, y). It panics if the cell does not exist.
func (g *Grid[T]) Get(x, y int) T {
	return g.cells[g.index(x, y)]
}

// Set stores v at (x, y). It panics if the cell does not exist.
func (g *Grid[T]) Set(x, y int, v T) {
	g.cells[g.index(x, y)] = v
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// ForEach calls fn for every cell, x-major then y.
func (g *Grid[T]) ForEach(fn func(x, y int, v T)) {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			fn(x, y, g.cells[x*g.height+y])
		}
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{
		width:  g.width,
		height: g.height,
		cells:  make([]T, len(g.cells)),
	}
	copy(c.cells, g.cells)
	return c
}

func (g *Grid[T]) index(x, y int) int {
	if !g.Exists(x, y) {
		panic(fmt.Sprintf("grid: cell (%d,%d) out of range %dx%d", x, y, g.width, g.height))
	}
	return x*g.height + y
}
