// Package search implements blind search drivers over the Puzzle
// interface: breadth-first and depth-first traversal with visited-state
// deduplication and solution-path reconstruction.
package search

import (
	"context"
	"errors"
	"time"

	"github.com/mesh-intelligence/puzzles/pkg/puzzle"
)

// Supported algorithm names.
const (
	AlgorithmBFS = "bfs"
	AlgorithmDFS = "dfs"
)

// knownAlgorithms lists the algorithms Validate accepts.
var knownAlgorithms = map[string]bool{
	AlgorithmBFS: true,
	AlgorithmDFS: true,
}

// Search errors.
var (
	ErrAlgorithmUnknown = errors.New("unknown search algorithm")
	ErrNoSolution       = errors.New("no solution found")
	ErrNodeLimit        = errors.New("node limit reached")
)

// Options configures a solve run.
type Options struct {
	Algorithm string // AlgorithmBFS or AlgorithmDFS; empty defaults to BFS
	MaxNodes  int    // maximum node expansions; 0 means unlimited
}

// Validate checks that the Options are well-formed.
func (o Options) Validate() error {
	if o.Algorithm != "" && !knownAlgorithms[o.Algorithm] {
		return ErrAlgorithmUnknown
	}
	return nil
}

// Result describes a completed solve run.
type Result struct {
	// Path holds every configuration from the start to the solved state,
	// inclusive. A path of length 1 means the start was already solved.
	Path []puzzle.Puzzle

	// Expanded counts the configurations whose extensions were generated.
	Expanded int

	// Duration is the wall-clock time the search took.
	Duration time.Duration
}

// node links a configuration back to the configuration it was reached
// from, for solution-path reconstruction.
type node struct {
	config puzzle.Puzzle
	parent *node
}

// Solve explores the configuration space of p until a solved
// configuration is found. It returns ErrNoSolution when the space is
// exhausted, ErrNodeLimit when Options.MaxNodes expansions were made
// without finding a solution, and the context error when ctx is
// cancelled between expansions.
func Solve(ctx context.Context, p puzzle.Puzzle, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	depthFirst := opts.Algorithm == AlgorithmDFS

	start := time.Now()
	frontier := []*node{{config: p}}
	visited := map[string]bool{}
	expanded := 0

	for len(frontier) > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		var cur *node
		if depthFirst {
			cur = frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]
		} else {
			cur = frontier[0]
			frontier = frontier[1:]
		}

		key := cur.config.Key()
		if visited[key] {
			continue
		}
		visited[key] = true

		if cur.config.IsSolved() {
			return &Result{
				Path:     pathTo(cur),
				Expanded: expanded,
				Duration: time.Since(start),
			}, nil
		}

		if opts.MaxNodes > 0 && expanded >= opts.MaxNodes {
			return nil, ErrNodeLimit
		}
		expanded++

		for _, ext := range cur.config.Extensions() {
			if !visited[ext.Key()] {
				frontier = append(frontier, &node{config: ext, parent: cur})
			}
		}
	}

	return nil, ErrNoSolution
}

// pathTo reconstructs the start-to-goal path ending at n.
func pathTo(n *node) []puzzle.Puzzle {
	var reversed []puzzle.Puzzle
	for ; n != nil; n = n.parent {
		reversed = append(reversed, n.config)
	}
	path := make([]puzzle.Puzzle, len(reversed))
	for i, p := range reversed {
		path[len(path)-1-i] = p
	}
	return path
}
