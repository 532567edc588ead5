package minecsp

import (
	"reflect"
	"testing"
)

func TestCells(t *testing.T) {
	tests := []struct {
		name string
		size Coord2
		want CellCount
	}{
		{"beginner", XY(9, 9), 81},
		{"expert", XY(30, 16), 480},
		{"max board", XY(255, 255), 65025},
		{"degenerate row", XY(5, 1), 5},
		{"empty", XY(0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cells(tt.size); got != tt.want {
				t.Errorf("Cells(%v) = %d, want %d", tt.size, got, tt.want)
			}
		})
	}
}

func TestNeighbors(t *testing.T) {
	bounds := XY(3, 3)

	tests := []struct {
		name   string
		center Coord2
		want   []Coord2
	}{
		{
			"interior cell has 8 neighbors in displacement order",
			XY(1, 1),
			[]Coord2{
				XY(0, 0), XY(1, 0), XY(2, 0),
				XY(0, 1), XY(2, 1),
				XY(0, 2), XY(1, 2), XY(2, 2),
			},
		},
		{
			"top-left corner clips to 3",
			XY(0, 0),
			[]Coord2{XY(1, 0), XY(0, 1), XY(1, 1)},
		},
		{
			"bottom-right corner clips to 3",
			XY(2, 2),
			[]Coord2{XY(1, 1), XY(2, 1), XY(1, 2)},
		},
		{
			"edge cell clips to 5",
			XY(1, 0),
			[]Coord2{XY(0, 0), XY(2, 0), XY(0, 1), XY(1, 1), XY(2, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Neighbors(tt.center, bounds)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Neighbors(%v) = %v, want %v", tt.center, got, tt.want)
			}
		})
	}
}

func TestNeighborsNoWraparound(t *testing.T) {
	// A 1x1 board has no neighbors anywhere; underflow at (0,0) must not
	// wrap to the far edge.
	if got := Neighbors(XY(0, 0), XY(1, 1)); len(got) != 0 {
		t.Errorf("Neighbors on 1x1 board = %v, want none", got)
	}

	// Degenerate 1D board: only horizontal neighbors survive clipping.
	got := Neighbors(XY(2, 0), XY(5, 1))
	want := []Coord2{XY(1, 0), XY(3, 0)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors on 5x1 board = %v, want %v", got, want)
	}
}

func TestForEachNeighborMatchesNeighbors(t *testing.T) {
	bounds := XY(4, 3)
	for x := Coord(0); x < bounds.X; x++ {
		for y := Coord(0); y < bounds.Y; y++ {
			center := XY(x, y)
			var visited []Coord2
			ForEachNeighbor(center, bounds, func(n Coord2) {
				visited = append(visited, n)
			})
			if want := Neighbors(center, bounds); !reflect.DeepEqual(visited, want) {
				t.Errorf("ForEachNeighbor(%v) visited %v, want %v", center, visited, want)
			}
		}
	}
}
