package puzzle

import (
	"errors"
	"strings"
)

// Marker is a single-cell symbol in a grid puzzle.
type Marker string

// Grid cell markers. A marker set may declare any subset of these.
const (
	MarkerPeg    Marker = "*"
	MarkerEmpty  Marker = "."
	MarkerUnused Marker = "#"
)

// validMarkers is the set of markers a marker set may declare.
var validMarkers = map[Marker]bool{
	MarkerPeg:    true,
	MarkerEmpty:  true,
	MarkerUnused: true,
}

// Peg solitaire construction errors.
var (
	ErrGridEmpty        = errors.New("grid must have at least one row")
	ErrGridRagged       = errors.New("grid rows must all have the same length")
	ErrMarkerUnknown    = errors.New("marker set contains an unknown marker")
	ErrMarkerUndeclared = errors.New("grid cell holds a marker outside the declared set")
)

// PegSolitaire is one configuration of peg solitaire on a rectangular
// grid. A peg jumps over an orthogonally adjacent peg into an empty cell
// two away; the jumped-over peg is removed. The configuration is solved
// when exactly one peg remains.
type PegSolitaire struct {
	grid    [][]Marker
	markers map[Marker]bool
}

// NewPegSolitaire creates a peg solitaire configuration from a grid and
// its declared marker set. The grid must be non-empty and rectangular,
// every cell must hold a declared marker, and the declared set must be a
// subset of {peg, empty, unused}. Violations return a sentinel error and
// no instance is created. Both inputs are copied; the caller may reuse
// them freely afterwards.
func NewPegSolitaire(grid [][]Marker, markers map[Marker]bool) (*PegSolitaire, error) {
	if len(grid) == 0 {
		return nil, ErrGridEmpty
	}
	for m := range markers {
		if !validMarkers[m] {
			return nil, ErrMarkerUnknown
		}
	}
	width := len(grid[0])
	for _, row := range grid {
		if len(row) != width {
			return nil, ErrGridRagged
		}
		for _, cell := range row {
			if !markers[cell] {
				return nil, ErrMarkerUndeclared
			}
		}
	}

	p := &PegSolitaire{
		grid:    copyMarkerGrid(grid),
		markers: make(map[Marker]bool, len(markers)),
	}
	for m := range markers {
		p.markers[m] = true
	}
	return p, nil
}

// jumpDirections lists the four jump offsets: the landing cell is the
// empty cell, the jumped-over peg sits one step away, and the jumping
// peg two steps away in the same direction.
var jumpDirections = [4][2]int{
	{0, -1}, // peg jumps rightward from two cells left
	{0, 1},  // peg jumps leftward from two cells right
	{-1, 0}, // peg jumps downward from two cells above
	{1, 0},  // peg jumps upward from two cells below
}

// Extensions returns one configuration per legal jump. Every empty cell
// is tested against all four directions independently, so a single empty
// cell contributes up to four successors. A grid with no empty cells
// yields an empty slice.
func (p *PegSolitaire) Extensions() []Puzzle {
	rows, cols := len(p.grid), len(p.grid[0])
	var configs []Puzzle
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if p.grid[i][j] != MarkerEmpty {
				continue
			}
			for _, d := range jumpDirections {
				oi, oj := i+d[0], j+d[1]
				fi, fj := i+2*d[0], j+2*d[1]
				if fi < 0 || fi >= rows || fj < 0 || fj >= cols {
					continue
				}
				if p.grid[oi][oj] != MarkerPeg || p.grid[fi][fj] != MarkerPeg {
					continue
				}
				next := copyMarkerGrid(p.grid)
				next[i][j] = MarkerPeg
				next[oi][oj] = MarkerEmpty
				next[fi][fj] = MarkerEmpty
				configs = append(configs, &PegSolitaire{grid: next, markers: p.markers})
			}
		}
	}
	return configs
}

// IsSolved reports whether exactly one peg remains. The counts of empty
// and unused cells are irrelevant.
func (p *PegSolitaire) IsSolved() bool {
	pegs := 0
	for _, row := range p.grid {
		for _, cell := range row {
			if cell == MarkerPeg {
				pegs++
				if pegs > 1 {
					return false
				}
			}
		}
	}
	return pegs == 1
}

// Equal reports whether other is a PegSolitaire with the same grid and
// the same declared marker set.
func (p *PegSolitaire) Equal(other Puzzle) bool {
	o, ok := other.(*PegSolitaire)
	if !ok {
		return false
	}
	if len(p.markers) != len(o.markers) {
		return false
	}
	for m := range p.markers {
		if !o.markers[m] {
			return false
		}
	}
	if len(p.grid) != len(o.grid) || len(p.grid[0]) != len(o.grid[0]) {
		return false
	}
	for i, row := range p.grid {
		for j, cell := range row {
			if o.grid[i][j] != cell {
				return false
			}
		}
	}
	return true
}

// Key returns the deduplication key for this configuration.
func (p *PegSolitaire) Key() string {
	return "peg\n" + p.String()
}

// String renders the grid one line per row, cells separated by single
// spaces, no trailing space.
func (p *PegSolitaire) String() string {
	var b strings.Builder
	for i, row := range p.grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(string(cell))
		}
	}
	return b.String()
}

// copyMarkerGrid returns a deep copy of a marker grid.
func copyMarkerGrid(grid [][]Marker) [][]Marker {
	out := make([][]Marker, len(grid))
	for i, row := range grid {
		out[i] = make([]Marker, len(row))
		copy(out[i], row)
	}
	return out
}
