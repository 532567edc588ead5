package minecsp

import "fmt"

// Grid is an owned, bounds-checked 2D container backed by a flat buffer.
// The zero value is an empty 0x0 grid. Grids are value types: copying a
// Grid shares the underlying buffer, so treat grids handed to Observation
// as frozen.
type Grid[T any] struct {
	size  Coord2
	cells []T
}

// NewGrid allocates a size.X by size.Y grid filled with the zero value of T.
func NewGrid[T any](size Coord2) Grid[T] {
	return Grid[T]{
		size:  size,
		cells: make([]T, int(size.X)*int(size.Y)),
	}
}

// NewGridFilled allocates a grid with every cell set to fill.
func NewGridFilled[T any](size Coord2, fill T) Grid[T] {
	g := NewGrid[T](size)
	for i := range g.cells {
		g.cells[i] = fill
	}
	return g
}

// Dims returns the grid dimensions.
func (g Grid[T]) Dims() Coord2 {
	return g.size
}

// InBounds reports whether coords lies inside the grid.
func (g Grid[T]) InBounds(coords Coord2) bool {
	return coords.X < g.size.X && coords.Y < g.size.Y
}

// index maps coords to the flat buffer. X-major so that the builder's
// outer-X, inner-Y scan walks the buffer sequentially.
func (g Grid[T]) index(coords Coord2) int {
	if !g.InBounds(coords) {
		panic(fmt.Sprintf("minecsp: coords (%d,%d) out of bounds for %dx%d grid",
			coords.X, coords.Y, g.size.X, g.size.Y))
	}
	return int(coords.X)*int(g.size.Y) + int(coords.Y)
}

// At returns the cell at coords. Out-of-bounds access panics.
func (g Grid[T]) At(coords Coord2) T {
	return g.cells[g.index(coords)]
}

// Set stores value at coords. Out-of-bounds access panics.
func (g Grid[T]) Set(coords Coord2, value T) {
	g.cells[g.index(coords)] = value
}
