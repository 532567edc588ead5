// This file implements BuildConstraints, the core algorithm: it turns an
// Observation into Boolean variables and linear equations, detects
// contradictions, and partitions the variables into independently solvable
// components.
package minecsp

import (
	"fmt"
	"sort"
)

// FlagSemantics selects how player flags enter the constraint system.
type FlagSemantics int

const (
	// SoftFlags treats flagged cells as ordinary unknowns; flags are mere
	// hints and do not alter any equation.
	SoftFlags FlagSemantics = iota
	// StrictFlags trusts flags as ground truth: a flagged cell is removed
	// from each equation's variable list and its assumed mine is
	// subtracted from the equation's target.
	StrictFlags
)

// String returns the semantics name.
func (s FlagSemantics) String() string {
	switch s {
	case SoftFlags:
		return "soft"
	case StrictFlags:
		return "strict"
	default:
		return fmt.Sprintf("FlagSemantics(%d)", int(s))
	}
}

// MineCountUsage selects whether a known total mine count becomes a
// global equation.
type MineCountUsage int

const (
	// UseMineCountIfKnown emits the global equation whenever the
	// observation carries a mine count.
	UseMineCountIfKnown MineCountUsage = iota
	// IgnoreMineCount never emits the global equation.
	IgnoreMineCount
)

// String returns the usage name.
func (u MineCountUsage) String() string {
	switch u {
	case UseMineCountIfKnown:
		return "use-if-known"
	case IgnoreMineCount:
		return "ignore"
	default:
		return fmt.Sprintf("MineCountUsage(%d)", int(u))
	}
}

// AnalysisConfig carries the two options of the builder. The zero value
// is the default configuration: soft flags, mine count used if known.
type AnalysisConfig struct {
	FlagSemantics  FlagSemantics  `json:"flagSemantics"`
	MineCountUsage MineCountUsage `json:"mineCountUsage"`
}

// BuildConstraints converts an Observation into a validated constraint
// problem. It is a pure function: no I/O, no shared state, deterministic
// output for identical inputs, safe to call concurrently from any number
// of goroutines.
//
// Structurally malformed observations (grid shape mismatch, mine count
// beyond the cell count) abort construction and return an empty problem
// with a single fatal contradiction. Logically infeasible equations are
// reported as contradictions and dropped individually; the rest of the
// problem remains usable by a solver.
func BuildConstraints(obs *Observation, cfg AnalysisConfig) ConstraintBuildOutput {
	var contradictions []Contradiction

	if obs.Revealed.Dims() != obs.Size || obs.Flags.Dims() != obs.Size {
		contradictions = append(contradictions, Contradiction{Kind: InvalidObservationShape})
		return emptyOutput(contradictions)
	}

	if obs.MineCount != nil {
		maxCells := Cells(obs.Size)
		if *obs.MineCount > maxCells {
			contradictions = append(contradictions, Contradiction{
				Kind:      InvalidMineCount,
				MineCount: *obs.MineCount,
				MaxCells:  maxCells,
			})
			return emptyOutput(contradictions)
		}
	}

	// Variable enumeration: one variable per hidden cell, ids assigned in
	// scan order (outer X, inner Y) so they stay stable across builds.
	var variables []ConstraintVariable
	variableIDs := NewGridFilled(obs.Size, -1)

	for x := Coord(0); x < obs.Size.X; x++ {
		for y := Coord(0); y < obs.Size.Y; y++ {
			coords := XY(x, y)
			if _, revealed := obs.RevealedAt(coords); revealed {
				continue
			}
			id := len(variables)
			variables = append(variables, ConstraintVariable{
				ID:      id,
				Coords:  coords,
				Flagged: obs.Flags.At(coords),
			})
			variableIDs.Set(coords, id)
		}
	}

	// Local equations: one per revealed cell, spanning its hidden
	// neighbors, in the same scan order as variable enumeration.
	var equations []ConstraintEquation
	localEquationCount := 0

	for x := Coord(0); x < obs.Size.X; x++ {
		for y := Coord(0); y < obs.Size.Y; y++ {
			clue := XY(x, y)
			clueMines, revealed := obs.RevealedAt(clue)
			if !revealed {
				continue
			}

			targetMines := int(clueMines)
			equationVars := make([]int, 0, 8)

			ForEachNeighbor(clue, obs.Size, func(neighbor Coord2) {
				if _, revealed := obs.RevealedAt(neighbor); revealed {
					return
				}
				varID := variableIDs.At(neighbor)
				if varID < 0 {
					// Unreachable: every hidden cell was enumerated above.
					panic(fmt.Sprintf("minecsp: hidden cell (%d,%d) has no variable id",
						neighbor.X, neighbor.Y))
				}
				if cfg.FlagSemantics == StrictFlags && obs.Flags.At(neighbor) {
					targetMines--
				} else {
					equationVars = append(equationVars, varID)
				}
			})

			if targetMines < 0 || targetMines > len(equationVars) {
				contradictions = append(contradictions, Contradiction{
					Kind:               LocalClueImpossible,
					Clue:               clue,
					TargetMines:        targetMines,
					AvailableVariables: len(equationVars),
				})
				continue
			}

			equations = append(equations, ConstraintEquation{
				ID:          len(equations),
				Kind:        EquationLocalClue,
				Clue:        clue,
				VariableIDs: equationVars,
				TargetMines: CellCount(targetMines),
			})
			localEquationCount++
		}
	}

	globalEquationCount := 0

	if cfg.MineCountUsage == UseMineCountIfKnown && obs.MineCount != nil {
		targetMines := int(*obs.MineCount)
		equationVars := make([]int, 0, len(variables))

		for _, v := range variables {
			if cfg.FlagSemantics == StrictFlags && v.Flagged {
				targetMines--
			} else {
				equationVars = append(equationVars, v.ID)
			}
		}

		if targetMines < 0 || targetMines > len(equationVars) {
			contradictions = append(contradictions, Contradiction{
				Kind:               GlobalMineCountImpossible,
				TargetMines:        targetMines,
				AvailableVariables: len(equationVars),
			})
		} else {
			equations = append(equations, ConstraintEquation{
				ID:          len(equations),
				Kind:        EquationGlobalMineCount,
				VariableIDs: equationVars,
				TargetMines: CellCount(targetMines),
			})
			globalEquationCount = 1
		}
	}

	components, unconstrained := buildComponents(len(variables), equations)

	maxComponentVariables := 0
	for _, component := range components {
		if len(component.VariableIDs) > maxComponentVariables {
			maxComponentVariables = len(component.VariableIDs)
		}
	}

	problem := ConstraintProblem{
		Variables:                variables,
		Equations:                equations,
		Components:               components,
		UnconstrainedVariableIDs: unconstrained,
	}

	stats := ConstraintStats{
		VariableCount:         len(problem.Variables),
		LocalEquationCount:    localEquationCount,
		GlobalEquationCount:   globalEquationCount,
		ComponentCount:        len(problem.Components),
		MaxComponentVariables: maxComponentVariables,
		ContradictionCount:    len(contradictions),
	}

	return ConstraintBuildOutput{
		Problem:        problem,
		Contradictions: contradictions,
		Stats:          stats,
	}
}

// emptyOutput is the result of a fatal precondition violation: no
// variables, no equations, zeroed stats except the contradiction count.
func emptyOutput(contradictions []Contradiction) ConstraintBuildOutput {
	return ConstraintBuildOutput{
		Contradictions: contradictions,
		Stats: ConstraintStats{
			ContradictionCount: len(contradictions),
		},
	}
}

// buildComponents partitions variables into maximal groups connected
// through shared local-clue equations. The global equation spans every
// variable and would collapse the partition into one block, so it is
// excluded from this pass entirely. Variables no local equation touches
// are returned separately as unconstrained.
func buildComponents(variableCount int, equations []ConstraintEquation) ([]ConstraintComponent, []int) {
	dsu := newUnionFind(variableCount)
	touched := make([]bool, variableCount)

	for _, equation := range equations {
		if equation.Kind != EquationLocalClue {
			continue
		}
		if len(equation.VariableIDs) == 0 {
			continue
		}
		first := equation.VariableIDs[0]
		touched[first] = true
		for _, varID := range equation.VariableIDs[1:] {
			touched[varID] = true
			dsu.union(first, varID)
		}
	}

	// Group touched variables by root, creating components in first-seen
	// order over ascending variable ids so the output is deterministic.
	rootToComponent := make(map[int]int)
	var components []ConstraintComponent

	for varID := 0; varID < variableCount; varID++ {
		if !touched[varID] {
			continue
		}
		root := dsu.find(varID)
		idx, ok := rootToComponent[root]
		if !ok {
			idx = len(components)
			rootToComponent[root] = idx
			components = append(components, ConstraintComponent{})
		}
		components[idx].VariableIDs = append(components[idx].VariableIDs, varID)
	}

	// Attach each local equation to the component(s) its variables resolve
	// to. An equation's variables are all unioned above, so in practice a
	// single root results; the root-set walk tolerates the general case.
	for _, equation := range equations {
		if equation.Kind != EquationLocalClue {
			continue
		}
		var roots []int
		for _, varID := range equation.VariableIDs {
			if !touched[varID] {
				continue
			}
			root := dsu.find(varID)
			seen := false
			for _, r := range roots {
				if r == root {
					seen = true
					break
				}
			}
			if !seen {
				roots = append(roots, root)
			}
		}
		for _, root := range roots {
			if idx, ok := rootToComponent[root]; ok {
				components[idx].EquationIDs = append(components[idx].EquationIDs, equation.ID)
			}
		}
	}

	for i := range components {
		sort.Ints(components[i].VariableIDs)
		sort.Ints(components[i].EquationIDs)
		components[i].EquationIDs = dedupeSorted(components[i].EquationIDs)
	}

	var unconstrained []int
	for varID, wasTouched := range touched {
		if !wasTouched {
			unconstrained = append(unconstrained, varID)
		}
	}

	return components, unconstrained
}

// dedupeSorted removes adjacent duplicates from a sorted slice in place.
func dedupeSorted(ids []int) []int {
	if len(ids) < 2 {
		return ids
	}
	out := ids[:1]
	for _, id := range ids[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}
