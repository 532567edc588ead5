// This file defines the contradiction taxonomy: the data-shaped reports of
// detected infeasibilities. Contradictions are values, not errors; callers
// inspect the returned list explicitly.
package minecsp

import "fmt"

// ContradictionKind tags the two tiers of detected problems: fatal
// precondition violations (malformed Observation, construction aborts with
// an empty problem) and logical infeasibilities (self-contradictory board
// state, the offending equation is dropped and construction continues).
type ContradictionKind int

const (
	// InvalidObservationShape: a grid's dimensions do not match the
	// declared board size. Fatal.
	InvalidObservationShape ContradictionKind = iota
	// InvalidMineCount: the known mine count exceeds the total cell
	// count. Fatal.
	InvalidMineCount
	// LocalClueImpossible: a revealed cell's clue cannot be satisfied by
	// its hidden neighbors under the configured flag semantics.
	LocalClueImpossible
	// GlobalMineCountImpossible: the total mine count cannot be satisfied
	// by the remaining variables under the configured flag semantics.
	GlobalMineCountImpossible
)

// String returns the kind name.
func (k ContradictionKind) String() string {
	switch k {
	case InvalidObservationShape:
		return "invalid-observation-shape"
	case InvalidMineCount:
		return "invalid-mine-count"
	case LocalClueImpossible:
		return "local-clue-impossible"
	case GlobalMineCountImpossible:
		return "global-mine-count-impossible"
	default:
		return fmt.Sprintf("ContradictionKind(%d)", int(k))
	}
}

// MarshalJSON encodes the kind as its string name.
func (k ContradictionKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON decodes a kind from its string name.
func (k *ContradictionKind) UnmarshalJSON(data []byte) error {
	for _, kind := range []ContradictionKind{
		InvalidObservationShape,
		InvalidMineCount,
		LocalClueImpossible,
		GlobalMineCountImpossible,
	} {
		if string(data) == `"`+kind.String()+`"` {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown contradiction kind %s", data)
}

// Contradiction reports one detected infeasibility. Which fields are
// meaningful depends on Kind:
//
//   - LocalClueImpossible: Clue, TargetMines, AvailableVariables.
//     TargetMines is the clue value after Strict flag subtraction and may
//     be negative.
//   - GlobalMineCountImpossible: TargetMines, AvailableVariables.
//   - InvalidMineCount: MineCount, MaxCells.
//   - InvalidObservationShape: no extra fields.
type Contradiction struct {
	Kind               ContradictionKind `json:"kind"`
	Clue               Coord2            `json:"clue"`
	TargetMines        int               `json:"targetMines"`
	AvailableVariables int               `json:"availableVariables"`
	MineCount          CellCount         `json:"mineCount"`
	MaxCells           CellCount         `json:"maxCells"`
}

// Fatal reports whether the contradiction aborted construction (tier one
// of the taxonomy). Non-fatal contradictions leave the rest of the
// problem usable.
func (c Contradiction) Fatal() bool {
	return c.Kind == InvalidObservationShape || c.Kind == InvalidMineCount
}

// String renders the contradiction for logs and CLI output.
func (c Contradiction) String() string {
	switch c.Kind {
	case InvalidObservationShape:
		return "invalid observation shape"
	case InvalidMineCount:
		return fmt.Sprintf("invalid mine count: %d mines for %d cells", c.MineCount, c.MaxCells)
	case LocalClueImpossible:
		return fmt.Sprintf("clue at (%d,%d) impossible: needs %d mines among %d variables",
			c.Clue.X, c.Clue.Y, c.TargetMines, c.AvailableVariables)
	case GlobalMineCountImpossible:
		return fmt.Sprintf("global mine count impossible: needs %d mines among %d variables",
			c.TargetMines, c.AvailableVariables)
	default:
		return c.Kind.String()
	}
}
