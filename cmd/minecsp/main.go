// Command minecsp analyzes a Minesweeper board sketch and prints the
// constraint system it induces: variables, equations, components, and any
// contradictions. It is a thin wrapper over pkg/minecsp.
//
// Board sketches use one line per row: '.' hidden, 'F' flagged, '0'..'8'
// revealed with that clue value.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gominecsp/pkg/minecsp"
)

var (
	mineCount       int
	strictFlags     bool
	ignoreMineCount bool
	outputJSON      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "minecsp",
		Short: "Minesweeper constraint-system analyzer",
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [board-file]",
		Short: "Build the constraint system for a board sketch",
		Long: `Build the constraint system for a board sketch read from a file
or from stdin when no file is given.

Examples:
  minecsp analyze board.txt
  minecsp analyze --mines 10 --strict board.txt
  cat board.txt | minecsp analyze --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}

	analyzeCmd.Flags().IntVarP(&mineCount, "mines", "m", -1, "Known total mine count (-1 = unknown)")
	analyzeCmd.Flags().BoolVar(&strictFlags, "strict", false, "Treat flags as ground truth instead of hints")
	analyzeCmd.Flags().BoolVar(&ignoreMineCount, "ignore-mine-count", false, "Never emit the global mine-count equation")
	analyzeCmd.Flags().BoolVar(&outputJSON, "json", false, "Print the full build output as JSON")

	rootCmd.AddCommand(analyzeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	rows, err := readSketch(args)
	if err != nil {
		return err
	}

	obs, err := minecsp.ParseBoard(rows...)
	if err != nil {
		return err
	}

	if mineCount >= 0 {
		count := minecsp.CellCount(mineCount)
		obs.MineCount = &count
		if err := obs.Validate(); err != nil {
			return err
		}
	}

	cfg := minecsp.AnalysisConfig{}
	if strictFlags {
		cfg.FlagSemantics = minecsp.StrictFlags
	}
	if ignoreMineCount {
		cfg.MineCountUsage = minecsp.IgnoreMineCount
	}

	out := minecsp.BuildConstraints(obs, cfg)

	if outputJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	printSummary(cmd, out)
	return nil
}

// readSketch loads board rows from the named file, or stdin when no
// argument (or "-") is given. Blank lines and surrounding whitespace are
// dropped.
func readSketch(args []string) ([]string, error) {
	input := os.Stdin
	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open board file: %w", err)
		}
		defer file.Close()
		input = file
	}

	var rows []string
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			rows = append(rows, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read board sketch: %w", err)
	}
	return rows, nil
}

func printSummary(cmd *cobra.Command, out minecsp.ConstraintBuildOutput) {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "variables:       %d\n", out.Stats.VariableCount)
	fmt.Fprintf(w, "local equations: %d\n", out.Stats.LocalEquationCount)
	fmt.Fprintf(w, "global equation: %v\n", out.Stats.GlobalEquationCount == 1)
	fmt.Fprintf(w, "components:      %d (largest: %d variables)\n",
		out.Stats.ComponentCount, out.Stats.MaxComponentVariables)
	fmt.Fprintf(w, "unconstrained:   %d\n", len(out.Problem.UnconstrainedVariableIDs))

	for _, eq := range out.Problem.Equations {
		switch eq.Kind {
		case minecsp.EquationLocalClue:
			fmt.Fprintf(w, "  eq %d: clue (%d,%d) needs %d mines in %v\n",
				eq.ID, eq.Clue.X, eq.Clue.Y, eq.TargetMines, eq.VariableIDs)
		case minecsp.EquationGlobalMineCount:
			fmt.Fprintf(w, "  eq %d: board total %d mines in %v\n",
				eq.ID, eq.TargetMines, eq.VariableIDs)
		}
	}

	if len(out.Contradictions) > 0 {
		fmt.Fprintln(w, "contradictions:")
		for _, c := range out.Contradictions {
			fmt.Fprintf(w, "  %s\n", c)
		}
	}
}
