// Package integration exercises the full solve pipeline: word-list
// loading, blind search over each puzzle kind, and history persistence.
package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/puzzles/internal/history"
	"github.com/mesh-intelligence/puzzles/internal/search"
	"github.com/mesh-intelligence/puzzles/internal/words"
	"github.com/mesh-intelligence/puzzles/pkg/puzzle"
)

var allMarkers = map[puzzle.Marker]bool{
	puzzle.MarkerPeg:    true,
	puzzle.MarkerEmpty:  true,
	puzzle.MarkerUnused: true,
}

func TestWordLadderPipeline(t *testing.T) {
	wordsPath := filepath.Join(t.TempDir(), "words")
	require.NoError(t, os.WriteFile(wordsPath,
		[]byte("came\ncase\ncast\ncost\nword\nlost\n"), 0o644))

	dict, err := words.Load(wordsPath)
	require.NoError(t, err)

	ladder := puzzle.NewWordLadder("same", "cost", dict)
	res, err := search.Solve(context.Background(), ladder, search.Options{Algorithm: search.AlgorithmBFS})
	require.NoError(t, err)

	require.Len(t, res.Path, 5, "BFS finds the four-move ladder")
	assert.Equal(t, "same -> cost", res.Path[0].String())
	assert.True(t, res.Path[len(res.Path)-1].IsSolved())

	dataDir := t.TempDir()
	store, err := history.Open(dataDir)
	require.NoError(t, err)

	id, err := store.Record(history.Run{
		Kind:       "ladder",
		Start:      ladder.String(),
		Algorithm:  search.AlgorithmBFS,
		Solved:     true,
		Steps:      len(res.Path) - 1,
		Expanded:   res.Expanded,
		DurationMS: res.Duration.Milliseconds(),
	})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// The run survives a store reopen.
	reopened, err := history.Open(dataDir)
	require.NoError(t, err)
	defer reopened.Close()

	run, err := reopened.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "ladder", run.Kind)
	assert.Equal(t, 4, run.Steps)
	assert.Equal(t, "same -> cost", run.Start)
}

func TestPegSolitairePipeline(t *testing.T) {
	// Reducible to a single peg in two jumps.
	grid, err := puzzle.ParseMarkerGrid("* * . *")
	require.NoError(t, err)
	p, err := puzzle.NewPegSolitaire(grid, allMarkers)
	require.NoError(t, err)

	res, err := search.Solve(context.Background(), p, search.Options{Algorithm: search.AlgorithmDFS})
	require.NoError(t, err)

	last := res.Path[len(res.Path)-1]
	assert.True(t, last.IsSolved())
	assert.Len(t, res.Path, 3)
	assert.True(t, res.Path[0].Equal(p), "path starts at the root configuration")
}

func TestSlidingTilePipeline(t *testing.T) {
	current, err := puzzle.ParseSymbolGrid("* 2 3\n1 4 5")
	require.NoError(t, err)
	goal, err := puzzle.ParseSymbolGrid("1 2 3\n4 5 *")
	require.NoError(t, err)
	s, err := puzzle.NewSlidingTile(current, goal)
	require.NoError(t, err)

	bfs, err := search.Solve(context.Background(), s, search.Options{Algorithm: search.AlgorithmBFS})
	require.NoError(t, err)
	dfs, err := search.Solve(context.Background(), s, search.Options{Algorithm: search.AlgorithmDFS})
	require.NoError(t, err)

	assert.True(t, bfs.Path[len(bfs.Path)-1].IsSolved())
	assert.True(t, dfs.Path[len(dfs.Path)-1].IsSolved())
	assert.LessOrEqual(t, len(bfs.Path), len(dfs.Path),
		"BFS never returns a longer path than DFS")
}
