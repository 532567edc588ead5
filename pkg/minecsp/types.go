// Package minecsp provides constraint-system construction for Minesweeper boards.
// This file defines the coordinate primitives: bounded board coordinates,
// cell counting, and 8-neighbor (Moore) adjacency with boundary clipping.
package minecsp

// Coord is a single coordinate axis, used for board width, height, and
// positions. Boards up to 255x255 are supported.
type Coord = uint8

// CellCount counts cells or mines. It is wide enough for the total cell
// count of the largest supported board (255x255 = 65025).
type CellCount = uint16

// Coord2 is a pair of board coordinates. It doubles as a board size, in
// which case X and Y are the exclusive upper bounds of the two axes.
type Coord2 struct {
	X Coord `json:"x"`
	Y Coord `json:"y"`
}

// XY is shorthand for constructing a Coord2.
func XY(x, y Coord) Coord2 {
	return Coord2{X: x, Y: y}
}

// Cells returns the total number of cells on a board of the given size.
func Cells(size Coord2) CellCount {
	return CellCount(size.X) * CellCount(size.Y)
}

// displacements lists the 8 Moore-neighborhood offsets in a fixed order:
// the row above left to right, then the two horizontal neighbors, then the
// row below left to right. Neighbor iteration order is part of the public
// contract because it determines equation variable-list ordering.
var displacements = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// applyDelta offsets coords by (dx, dy) and reports whether the result is
// still inside bounds. Negative and out-of-range results are rejected
// rather than wrapped.
func applyDelta(coords Coord2, dx, dy int, bounds Coord2) (Coord2, bool) {
	nx := int(coords.X) + dx
	if nx < 0 || nx >= int(bounds.X) {
		return Coord2{}, false
	}
	ny := int(coords.Y) + dy
	if ny < 0 || ny >= int(bounds.Y) {
		return Coord2{}, false
	}
	return Coord2{X: Coord(nx), Y: Coord(ny)}, true
}

// ForEachNeighbor calls fn for every in-bounds Moore neighbor of center,
// in the fixed displacement order. It allocates nothing and has no side
// effects beyond the calls to fn.
func ForEachNeighbor(center, bounds Coord2, fn func(Coord2)) {
	for _, d := range displacements {
		if n, ok := applyDelta(center, d[0], d[1], bounds); ok {
			fn(n)
		}
	}
}

// Neighbors returns the in-bounds Moore neighbors of center as a slice,
// in the fixed displacement order. A corner cell yields 3 neighbors, an
// edge cell 5, an interior cell 8.
func Neighbors(center, bounds Coord2) []Coord2 {
	out := make([]Coord2, 0, 8)
	ForEachNeighbor(center, bounds, func(n Coord2) {
		out = append(out, n)
	})
	return out
}
