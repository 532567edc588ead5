// Package minecsp turns partially revealed Minesweeper boards into
// constraint satisfaction problems. It provides the problem-construction
// half of a board analyzer: translating an immutable board Observation
// into a system of linear equations over Boolean mine/no-mine variables,
// detecting logical impossibilities, and partitioning the system into
// independently solvable components. Actually solving the equations is
// left to downstream consumers.
//
// The central operation is BuildConstraints:
//
//	obs, _ := minecsp.ParseBoard(
//		"..",
//		".1",
//	)
//	out := minecsp.BuildConstraints(obs, minecsp.AnalysisConfig{})
//
// Every hidden cell becomes a ConstraintVariable; every revealed cell
// contributes a local-clue ConstraintEquation over its hidden neighbors;
// a known total mine count optionally contributes one global equation.
// Variables connected through shared local equations are grouped into
// ConstraintComponents so a solver can treat each group in isolation.
//
// Two configuration options exist. FlagSemantics decides whether player
// flags are hints (SoftFlags) or ground truth (StrictFlags, folding
// flagged cells out of the equations). MineCountUsage decides whether a
// known total mine count becomes a global equation.
//
// Anomalies never panic and never surface as Go errors from
// BuildConstraints; they are reported as Contradiction values in the
// output. Structurally malformed observations abort construction with an
// empty problem, while logically infeasible clues only drop their own
// equation, leaving the rest of the problem usable.
//
// The package performs no I/O and keeps no shared state. BuildConstraints
// is a pure function, safe for concurrent use, with deterministic output
// for identical inputs.
package minecsp
