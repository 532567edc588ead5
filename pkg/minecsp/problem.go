// This file defines the constraint problem data model: the plain,
// serializable output structures of BuildConstraints. None of these types
// carry behavior beyond formatting; they are safe to persist or transmit.
package minecsp

import "fmt"

// ConstraintVariable is one unknown Boolean (mine / not-mine), created for
// every hidden cell. IDs are dense 0..variableCount-1 in enumeration order
// (outer loop over X, inner over Y), so they are stable across builds of
// the same observation.
type ConstraintVariable struct {
	ID      int    `json:"id"`
	Coords  Coord2 `json:"coords"`
	Flagged bool   `json:"flagged"`
}

// EquationKind distinguishes the two sources of constraint equations.
type EquationKind int

const (
	// EquationLocalClue is derived from one revealed cell's adjacent-mine
	// count and spans that cell's hidden neighbors.
	EquationLocalClue EquationKind = iota
	// EquationGlobalMineCount is derived from the board's known total mine
	// count and spans all variables. At most one such equation exists.
	EquationGlobalMineCount
)

// String returns the kind name.
func (k EquationKind) String() string {
	switch k {
	case EquationLocalClue:
		return "local-clue"
	case EquationGlobalMineCount:
		return "global-mine-count"
	default:
		return fmt.Sprintf("EquationKind(%d)", int(k))
	}
}

// MarshalJSON encodes the kind as its string name.
func (k EquationKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON decodes a kind from its string name.
func (k *EquationKind) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"local-clue"`:
		*k = EquationLocalClue
	case `"global-mine-count"`:
		*k = EquationGlobalMineCount
	default:
		return fmt.Errorf("unknown equation kind %s", data)
	}
	return nil
}

// ConstraintEquation is one linear constraint: the sum of its variables
// (each 0 or 1) equals TargetMines. Clue is the position of the revealed
// cell the equation came from and is meaningful only for EquationLocalClue.
// VariableIDs preserves neighbor iteration order for local equations and
// variable id order for the global equation.
type ConstraintEquation struct {
	ID          int          `json:"id"`
	Kind        EquationKind `json:"kind"`
	Clue        Coord2       `json:"clue"`
	VariableIDs []int        `json:"variableIds"`
	TargetMines CellCount    `json:"targetMines"`
}

// ConstraintComponent is a maximal set of variables connected transitively
// through shared local-clue equations, plus the ids of the local equations
// touching it. Both lists are sorted ascending; EquationIDs is deduplicated.
// The global equation belongs to no component.
type ConstraintComponent struct {
	VariableIDs []int `json:"variableIds"`
	EquationIDs []int `json:"equationIds"`
}

// ConstraintProblem bundles everything a downstream solver needs. It is
// fully owned by the caller and never mutated after being returned.
// UnconstrainedVariableIDs lists hidden cells no local clue reaches,
// sorted ascending; they appear in no component.
type ConstraintProblem struct {
	Variables                []ConstraintVariable  `json:"variables"`
	Equations                []ConstraintEquation  `json:"equations"`
	Components               []ConstraintComponent `json:"components"`
	UnconstrainedVariableIDs []int                 `json:"unconstrainedVariableIds"`
}

// ConstraintStats summarizes a build. The counters are derivable from the
// other output fields and exist purely for reporting.
type ConstraintStats struct {
	VariableCount         int `json:"variableCount"`
	LocalEquationCount    int `json:"localEquationCount"`
	GlobalEquationCount   int `json:"globalEquationCount"`
	ComponentCount        int `json:"componentCount"`
	MaxComponentVariables int `json:"maxComponentVariables"`
	ContradictionCount    int `json:"contradictionCount"`
}

// ConstraintBuildOutput is the complete result of BuildConstraints:
// the problem, every contradiction detected along the way, and summary
// stats. Plain data throughout.
type ConstraintBuildOutput struct {
	Problem        ConstraintProblem `json:"problem"`
	Contradictions []Contradiction   `json:"contradictions"`
	Stats          ConstraintStats   `json:"stats"`
}
