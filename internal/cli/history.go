package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/puzzles/internal/history"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded solve runs",
	}
	cmd.AddCommand(newHistoryListCmd())
	cmd.AddCommand(newHistoryShowCmd())
	return cmd
}

// openStore resolves the data directory and opens the history store.
func openStore() (*history.Store, error) {
	v, err := loadConfig()
	if err != nil {
		return nil, err
	}
	dataDir, err := resolveDataDir(v)
	if err != nil {
		return nil, fmt.Errorf("resolve data directory: %w", err)
	}
	store, err := history.Open(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return store, nil
}

func newHistoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded solve runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded.")
				return nil
			}
			for _, run := range runs {
				outcome := "unsolved"
				if run.Solved {
					outcome = fmt.Sprintf("%d moves", run.Steps)
				}
				fmt.Fprintf(out, "%s  %-6s %-3s %-9s %s\n",
					run.RunID, run.Kind, run.Algorithm, outcome,
					run.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

func newHistoryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show RUN_ID",
		Short: "Show one recorded solve run in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			run, err := store.Get(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run:       %s\n", run.RunID)
			fmt.Fprintf(out, "Kind:      %s\n", run.Kind)
			fmt.Fprintf(out, "Algorithm: %s\n", run.Algorithm)
			fmt.Fprintf(out, "Solved:    %t\n", run.Solved)
			fmt.Fprintf(out, "Steps:     %d\n", run.Steps)
			fmt.Fprintf(out, "Expanded:  %d\n", run.Expanded)
			fmt.Fprintf(out, "Duration:  %dms\n", run.DurationMS)
			fmt.Fprintf(out, "Recorded:  %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
			fmt.Fprintf(out, "Start:\n%s\n", run.Start)
			return nil
		},
	}
}
