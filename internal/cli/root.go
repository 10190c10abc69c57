// Package cli implements the puzzler command-line interface: demo
// entry points for the three puzzle kinds, solve-history inspection,
// and configuration scaffolding.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	algorithm string
	maxNodes  int
	record    bool
}

var flags rootFlags

// NewRootCmd creates the top-level "puzzler" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "puzzler",
		Short: "A blind-search solver for combinatorial puzzles",
		Long: "Puzzler solves grid peg solitaire, sliding-tile puzzles, and\n" +
			"word ladders with breadth-first or depth-first search, and keeps a\n" +
			"history of past solve runs.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: .puzzles-db)")
	root.PersistentFlags().StringVar(&flags.algorithm, "algo", "", "search algorithm: bfs or dfs (default: from config, then bfs)")
	root.PersistentFlags().IntVar(&flags.maxNodes, "max-nodes", 0, "abort after expanding this many configurations (0 = unlimited)")
	root.PersistentFlags().BoolVar(&flags.record, "record", false, "record the solve run in the history store")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newSolveCmd())
	root.AddCommand(newHistoryCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

// exitError prints the message to stderr and exits with the given code.
func exitError(cmd *cobra.Command, code int, msg string) error {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
	return nil // unreachable
}
