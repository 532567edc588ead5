// This file defines Observation, the immutable snapshot of a partially
// revealed board that the constraint builder consumes, together with the
// interface boundary through which a live play engine is observed.
package minecsp

import (
	"errors"
	"fmt"
)

// HiddenCell is the sentinel stored in an Observation's Revealed grid for
// cells that are hidden or flagged (no adjacent-mine clue is visible).
const HiddenCell int16 = -1

// CellState classifies a cell as seen by the player. It is the snapshot
// boundary between a play engine and this package: the engine exposes one
// CellState per coordinate and never hears back.
type CellState int

const (
	// CellHidden is an untouched cell.
	CellHidden CellState = iota
	// CellRevealed is an opened cell showing its adjacent-mine count.
	CellRevealed
	// CellFlagged is a hidden cell the player has flagged.
	CellFlagged
)

// String returns the state name.
func (s CellState) String() string {
	switch s {
	case CellHidden:
		return "hidden"
	case CellRevealed:
		return "revealed"
	case CellFlagged:
		return "flagged"
	default:
		return fmt.Sprintf("CellState(%d)", int(s))
	}
}

// BoardSnapshot is the read-only view a play engine offers for observation.
// CellAt returns the state of a cell and, for CellRevealed, its
// adjacent-mine count (0..8); the count is meaningless for other states.
type BoardSnapshot interface {
	Size() Coord2
	MineCount() (CellCount, bool)
	CellAt(coords Coord2) (CellState, uint8)
}

// Validation errors for structurally malformed observations.
var (
	// ErrBoardShape reports a revealed or flags grid whose dimensions do
	// not match the declared board size.
	ErrBoardShape = errors.New("grid dimensions do not match board size")
	// ErrMineCount reports a known mine count exceeding the board's cell count.
	ErrMineCount = errors.New("mine count exceeds total cell count")
)

// Observation is an immutable snapshot of revealed, flagged, and hidden
// cell state, plus the total mine count when known (nil means unknown).
// It is owned independently of whatever produced it: construct it once,
// then only read it. Revealed holds HiddenCell for unrevealed cells and
// the clue value 0..8 for revealed ones; Flags is only meaningful for
// hidden cells.
type Observation struct {
	Size      Coord2
	MineCount *CellCount
	Revealed  Grid[int16]
	Flags     Grid[bool]
}

// NewObservation builds a validated Observation. The grids are referenced,
// not copied; callers must not mutate them afterwards.
func NewObservation(size Coord2, mineCount *CellCount, revealed Grid[int16], flags Grid[bool]) (*Observation, error) {
	obs := &Observation{
		Size:      size,
		MineCount: mineCount,
		Revealed:  revealed,
		Flags:     flags,
	}
	if err := obs.Validate(); err != nil {
		return nil, err
	}
	return obs, nil
}

// ObserveBoard snapshots a live board into an Observation. The snapshot is
// read exactly once per cell; the resulting Observation shares nothing
// with the board.
func ObserveBoard(snap BoardSnapshot) *Observation {
	size := snap.Size()
	revealed := NewGridFilled(size, HiddenCell)
	flags := NewGrid[bool](size)

	for x := Coord(0); x < size.X; x++ {
		for y := Coord(0); y < size.Y; y++ {
			coords := XY(x, y)
			switch state, clue := snap.CellAt(coords); state {
			case CellRevealed:
				revealed.Set(coords, int16(clue))
			case CellFlagged:
				flags.Set(coords, true)
			}
		}
	}

	var mineCount *CellCount
	if count, known := snap.MineCount(); known {
		mineCount = &count
	}

	return &Observation{
		Size:      size,
		MineCount: mineCount,
		Revealed:  revealed,
		Flags:     flags,
	}
}

// ParseBoard builds an Observation with unknown mine count from a textual
// board sketch, one string per row (row index = Y, column index = X):
// '.' hidden, 'F' flagged, '0'..'8' revealed with that clue value.
// Intended for tests and tooling.
func ParseBoard(rows ...string) (*Observation, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("parse board: empty sketch")
	}
	width := len(rows[0])
	if width > 255 || len(rows) > 255 {
		return nil, fmt.Errorf("parse board: sketch exceeds 255x255")
	}

	size := XY(Coord(width), Coord(len(rows)))
	revealed := NewGridFilled(size, HiddenCell)
	flags := NewGrid[bool](size)

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("parse board: row %d has %d cells, want %d", y, len(row), width)
		}
		for x := 0; x < width; x++ {
			coords := XY(Coord(x), Coord(y))
			switch c := row[x]; {
			case c == '.':
				// hidden
			case c == 'F':
				flags.Set(coords, true)
			case c >= '0' && c <= '8':
				revealed.Set(coords, int16(c-'0'))
			default:
				return nil, fmt.Errorf("parse board: invalid cell %q at (%d,%d)", c, x, y)
			}
		}
	}

	return NewObservation(size, nil, revealed, flags)
}

// Validate checks the structural invariants: both grids must match Size
// exactly, and a known mine count must not exceed the total cell count.
func (obs *Observation) Validate() error {
	if obs.Revealed.Dims() != obs.Size || obs.Flags.Dims() != obs.Size {
		return fmt.Errorf("observation %dx%d: %w", obs.Size.X, obs.Size.Y, ErrBoardShape)
	}
	if obs.MineCount != nil && *obs.MineCount > Cells(obs.Size) {
		return fmt.Errorf("observation has %d mines for %d cells: %w",
			*obs.MineCount, Cells(obs.Size), ErrMineCount)
	}
	return nil
}

// RevealedAt returns the clue value at coords and whether the cell is
// revealed at all.
func (obs *Observation) RevealedAt(coords Coord2) (uint8, bool) {
	v := obs.Revealed.At(coords)
	if v == HiddenCell {
		return 0, false
	}
	return uint8(v), true
}
