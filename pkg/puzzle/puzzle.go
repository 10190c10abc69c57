package puzzle

// Puzzle is the capability set every concrete puzzle kind implements.
// A Puzzle value is one immutable snapshot of a puzzle's state; moves
// always construct new values.
type Puzzle interface {
	// Extensions returns the configurations reachable from this one by
	// exactly one legal move. An empty slice signals a dead end, not an
	// error. The receiver is never mutated.
	Extensions() []Puzzle

	// IsSolved reports whether this configuration satisfies the puzzle's
	// goal condition. Total and side-effect free.
	IsSolved() bool

	// Equal reports whether other is the same concrete kind with a fully
	// matching configuration. Search drivers use it to deduplicate
	// visited states.
	Equal(other Puzzle) bool

	// Key returns a canonical deduplication key derived from the same
	// fields Equal compares. The goal side of a configuration (target
	// grid, target word, dictionary) is constant within one search, so
	// the key prefixes the kind name onto the canonical rendering.
	Key() string

	// String returns the canonical human-readable rendering used for
	// solution-path display. Grid kinds render one line per row with
	// cells separated by single spaces; the word ladder renders
	// "<currentWord> -> <targetWord>".
	String() string
}
