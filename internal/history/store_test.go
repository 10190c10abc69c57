package history

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStore opens a store in a temp directory and closes it when
// the test finishes.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestStoreRecordGeneratesUUIDv7(t *testing.T) {
	store := openTestStore(t)

	id, err := store.Record(Run{Kind: "ladder", Start: "same -> cost", Algorithm: "bfs", Solved: true, Steps: 4})
	require.NoError(t, err)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestStoreRecordAndGet(t *testing.T) {
	store := openTestStore(t)

	id, err := store.Record(Run{
		Kind:       "tile",
		Start:      "* 2 3\n1 4 5",
		Algorithm:  "bfs",
		Solved:     true,
		Steps:      5,
		Expanded:   12,
		DurationMS: 3,
	})
	require.NoError(t, err)

	run, err := store.Get(id)
	require.NoError(t, err)

	assert.Equal(t, id, run.RunID)
	assert.Equal(t, "tile", run.Kind)
	assert.Equal(t, "* 2 3\n1 4 5", run.Start)
	assert.Equal(t, "bfs", run.Algorithm)
	assert.True(t, run.Solved)
	assert.Equal(t, 5, run.Steps)
	assert.Equal(t, 12, run.Expanded)
	assert.Equal(t, int64(3), run.DurationMS)
	assert.WithinDuration(t, time.Now(), run.CreatedAt, 5*time.Second)
}

func TestStoreGetNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get("no-such-run")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestStoreList(t *testing.T) {
	store := openTestStore(t)

	runs, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	first, err := store.Record(Run{Kind: "peg", Start: ". * *", Algorithm: "dfs", Solved: true, Steps: 1})
	require.NoError(t, err)
	second, err := store.Record(Run{Kind: "ladder", Start: "same -> cost", Algorithm: "bfs"})
	require.NoError(t, err)

	runs, err = store.List()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second, runs[0].RunID, "listing is newest first")
	assert.Equal(t, first, runs[1].RunID)
}

func TestStoreClosed(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Close())
	require.NoError(t, store.Close(), "close is idempotent")

	_, err = store.Record(Run{Kind: "peg"})
	assert.ErrorIs(t, err, ErrStoreClosed)
	_, err = store.List()
	assert.ErrorIs(t, err, ErrStoreClosed)
	_, err = store.Get("id")
	assert.ErrorIs(t, err, ErrStoreClosed)
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	require.NoError(t, err)
	id, err := store.Record(Run{Kind: "peg", Start: ". * *", Algorithm: "bfs", Solved: true, Steps: 1})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(dir)
	require.NoError(t, err)
	defer reopened.Close()

	run, err := reopened.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "peg", run.Kind)
}
