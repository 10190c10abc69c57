// Command puzzler is the CLI entry point for the puzzles module.
package main

import "github.com/mesh-intelligence/puzzles/internal/cli"

func main() {
	cli.Execute()
}
