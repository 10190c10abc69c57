package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/puzzles/internal/history"
	"github.com/mesh-intelligence/puzzles/internal/search"
	"github.com/mesh-intelligence/puzzles/internal/words"
	"github.com/mesh-intelligence/puzzles/pkg/puzzle"
)

// allMarkers declares the full marker set for CLI-supplied peg grids.
var allMarkers = map[puzzle.Marker]bool{
	puzzle.MarkerPeg:    true,
	puzzle.MarkerEmpty:  true,
	puzzle.MarkerUnused: true,
}

// Demo configurations used when no input files are given, matching the
// classic 5×5 peg board and the 2×3 sliding-tile example.
const (
	demoPegGrid = `* * * * *
* * * * *
* * * * *
* * . * *
* * * * *`

	demoTileCurrent = `* 2 3
1 4 5`

	demoTileGoal = `1 2 3
4 5 *`
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a puzzle with blind search",
	}
	cmd.AddCommand(newSolvePegCmd())
	cmd.AddCommand(newSolveTileCmd())
	cmd.AddCommand(newSolveLadderCmd())
	return cmd
}

func newSolvePegCmd() *cobra.Command {
	var gridFile string

	cmd := &cobra.Command{
		Use:   "peg",
		Short: "Solve grid peg solitaire down to a single peg",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := demoPegGrid
			if gridFile != "" {
				data, err := os.ReadFile(gridFile)
				if err != nil {
					return fmt.Errorf("read grid: %w", err)
				}
				text = string(data)
			}
			grid, err := puzzle.ParseMarkerGrid(text)
			if err != nil {
				return fmt.Errorf("parse grid: %w", err)
			}
			p, err := puzzle.NewPegSolitaire(grid, allMarkers)
			if err != nil {
				return fmt.Errorf("invalid grid: %w", err)
			}
			return runSolve(cmd, "peg", p)
		},
	}

	cmd.Flags().StringVar(&gridFile, "grid", "", "grid file (default: built-in 5x5 board)")
	return cmd
}

func newSolveTileCmd() *cobra.Command {
	var currentFile, goalFile string

	cmd := &cobra.Command{
		Use:   "tile",
		Short: "Solve a sliding-tile puzzle towards its goal grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			currentText, goalText := demoTileCurrent, demoTileGoal
			if (currentFile == "") != (goalFile == "") {
				return errors.New("--current and --goal must be given together")
			}
			if currentFile != "" {
				currentData, err := os.ReadFile(currentFile)
				if err != nil {
					return fmt.Errorf("read current grid: %w", err)
				}
				goalData, err := os.ReadFile(goalFile)
				if err != nil {
					return fmt.Errorf("read goal grid: %w", err)
				}
				currentText, goalText = string(currentData), string(goalData)
			}

			current, err := puzzle.ParseSymbolGrid(currentText)
			if err != nil {
				return fmt.Errorf("parse current grid: %w", err)
			}
			goal, err := puzzle.ParseSymbolGrid(goalText)
			if err != nil {
				return fmt.Errorf("parse goal grid: %w", err)
			}
			s, err := puzzle.NewSlidingTile(current, goal)
			if err != nil {
				return fmt.Errorf("invalid grids: %w", err)
			}
			return runSolve(cmd, "tile", s)
		},
	}

	cmd.Flags().StringVar(&currentFile, "current", "", "current grid file (default: built-in 2x3 demo)")
	cmd.Flags().StringVar(&goalFile, "goal", "", "goal grid file (default: built-in 2x3 demo)")
	return cmd
}

func newSolveLadderCmd() *cobra.Command {
	var wordsFile string

	cmd := &cobra.Command{
		Use:   "ladder FROM TO",
		Short: "Solve a word ladder between two words",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := wordsFile
			if path == "" {
				v, err := loadConfig()
				if err != nil {
					return err
				}
				path = v.GetString(cfgKeyWordsFile)
			}
			if path == "" {
				return errors.New("no word list: pass --words or set words_file in config.yaml")
			}
			dict, err := words.Load(path)
			if err != nil {
				return err
			}
			return runSolve(cmd, "ladder", puzzle.NewWordLadder(args[0], args[1], dict))
		},
	}

	cmd.Flags().StringVar(&wordsFile, "words", "", "newline-delimited word list file")
	return cmd
}

// runSolve drives the search for one configured puzzle, prints the
// solution path, and optionally records the run in the history store.
func runSolve(cmd *cobra.Command, kind string, p puzzle.Puzzle) error {
	v, err := loadConfig()
	if err != nil {
		return err
	}
	opts := search.Options{
		Algorithm: resolveAlgorithm(v),
		MaxNodes:  flags.maxNodes,
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	run := history.Run{Kind: kind, Start: p.String(), Algorithm: opts.Algorithm}

	res, err := search.Solve(cmd.Context(), p, opts)
	switch {
	case err == nil:
		for _, step := range res.Path {
			fmt.Fprintf(out, "%s\n\n", step)
		}
		fmt.Fprintf(out, "Solved in %d moves (%d configurations expanded in %s).\n",
			len(res.Path)-1, res.Expanded, res.Duration.Round(time.Millisecond))
		run.Solved = true
		run.Steps = len(res.Path) - 1
		run.Expanded = res.Expanded
		run.DurationMS = res.Duration.Milliseconds()
	case errors.Is(err, search.ErrNoSolution):
		fmt.Fprintln(out, "No solution found.")
	case errors.Is(err, search.ErrNodeLimit):
		fmt.Fprintf(out, "No solution within %d expansions.\n", opts.MaxNodes)
	default:
		return err
	}

	if !flags.record {
		return nil
	}
	dataDir, err := resolveDataDir(v)
	if err != nil {
		return fmt.Errorf("resolve data directory: %w", err)
	}
	store, err := history.Open(dataDir)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	id, err := store.Record(run)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	fmt.Fprintf(out, "Recorded run %s\n", id)
	return nil
}
