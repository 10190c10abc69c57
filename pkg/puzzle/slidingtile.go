package puzzle

import (
	"errors"
	"strings"
)

// Blank is the sentinel symbol for the one movable empty cell in a
// sliding-tile grid.
const Blank = "*"

// Sliding-tile construction errors.
var (
	ErrTileGridEmpty  = errors.New("tile grid must have at least one row")
	ErrTileGridRagged = errors.New("tile grid rows must all have the same length")
	ErrTileShape      = errors.New("current and goal grids must have the same shape")
	ErrTileBlankCount = errors.New("tile grid must contain exactly one blank cell")
)

// SlidingTile is one configuration of the n×m sliding-tile puzzle: a
// current grid of distinct symbols plus one blank, worked towards a goal
// grid of the same shape. Each move slides a tile orthogonally adjacent
// to the blank into the blank's position.
type SlidingTile struct {
	n, m    int
	current [][]string
	goal    [][]string
}

// NewSlidingTile creates a sliding-tile configuration from a current and
// a goal grid. Both grids must be non-empty, rectangular, of the same
// shape, and contain exactly one blank cell each. Both inputs are copied.
func NewSlidingTile(current, goal [][]string) (*SlidingTile, error) {
	for _, grid := range [2][][]string{current, goal} {
		if err := checkTileGrid(grid); err != nil {
			return nil, err
		}
	}
	if len(current) != len(goal) || len(current[0]) != len(goal[0]) {
		return nil, ErrTileShape
	}
	return &SlidingTile{
		n:       len(current),
		m:       len(current[0]),
		current: copyStringGrid(current),
		goal:    copyStringGrid(goal),
	}, nil
}

// checkTileGrid validates shape and blank count for one grid.
func checkTileGrid(grid [][]string) error {
	if len(grid) == 0 {
		return ErrTileGridEmpty
	}
	width := len(grid[0])
	blanks := 0
	for _, row := range grid {
		if len(row) != width {
			return ErrTileGridRagged
		}
		for _, cell := range row {
			if cell == Blank {
				blanks++
			}
		}
	}
	if blanks != 1 {
		return ErrTileBlankCount
	}
	return nil
}

// blankAt returns the row-major position of the blank cell.
func (s *SlidingTile) blankAt() (int, int) {
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.m; j++ {
			if s.current[i][j] == Blank {
				return i, j
			}
		}
	}
	// Unreachable: the constructor guarantees exactly one blank.
	return 0, 0
}

// slideNeighbors lists the neighbor offsets tried from the blank's
// position, in order: right, left, down, up.
var slideNeighbors = [4][2]int{
	{0, 1},
	{0, -1},
	{1, 0},
	{-1, 0},
}

// Extensions returns one configuration per tile that can slide into the
// blank. A corner blank yields 2 successors, an edge blank 3, an
// interior blank 4. The goal grid is carried over unchanged.
func (s *SlidingTile) Extensions() []Puzzle {
	bi, bj := s.blankAt()
	var configs []Puzzle
	for _, d := range slideNeighbors {
		ni, nj := bi+d[0], bj+d[1]
		if ni < 0 || ni >= s.n || nj < 0 || nj >= s.m {
			continue
		}
		next := copyStringGrid(s.current)
		next[bi][bj], next[ni][nj] = next[ni][nj], Blank
		configs = append(configs, &SlidingTile{
			n:       s.n,
			m:       s.m,
			current: next,
			goal:    s.goal,
		})
	}
	return configs
}

// IsSolved reports whether the current grid matches the goal grid cell
// by cell, not merely by blank position.
func (s *SlidingTile) IsSolved() bool {
	return gridsEqual(s.current, s.goal)
}

// Equal reports whether other is a SlidingTile with matching current and
// goal grids.
func (s *SlidingTile) Equal(other Puzzle) bool {
	o, ok := other.(*SlidingTile)
	if !ok {
		return false
	}
	return s.n == o.n && s.m == o.m &&
		gridsEqual(s.current, o.current) && gridsEqual(s.goal, o.goal)
}

// Key returns the deduplication key for this configuration.
func (s *SlidingTile) Key() string {
	return "tile\n" + s.String()
}

// String renders the current grid one line per row, cells separated by
// single spaces, no trailing space.
func (s *SlidingTile) String() string {
	return renderStringGrid(s.current)
}

// gridsEqual reports cell-by-cell equality of two equally shaped grids.
func gridsEqual(a, b [][]string) bool {
	if len(a) != len(b) {
		return false
	}
	for i, row := range a {
		if len(row) != len(b[i]) {
			return false
		}
		for j, cell := range row {
			if b[i][j] != cell {
				return false
			}
		}
	}
	return true
}

// copyStringGrid returns a deep copy of a symbol grid.
func copyStringGrid(grid [][]string) [][]string {
	out := make([][]string, len(grid))
	for i, row := range grid {
		out[i] = make([]string, len(row))
		copy(out[i], row)
	}
	return out
}

// renderStringGrid renders a grid one line per row, space-separated.
func renderStringGrid(grid [][]string) string {
	var b strings.Builder
	for i, row := range grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Join(row, " "))
	}
	return b.String()
}
