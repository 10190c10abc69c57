package puzzle

import (
	"errors"
	"strings"
)

// ErrParseEmpty is returned when grid text contains no non-blank lines.
var ErrParseEmpty = errors.New("grid text contains no rows")

// ParseMarkerGrid parses peg solitaire grid text in the same format the
// rendering produces: one line per row, cells separated by whitespace.
// Blank lines are skipped. Shape and marker validation is left to
// NewPegSolitaire.
func ParseMarkerGrid(text string) ([][]Marker, error) {
	var grid [][]Marker
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		row := make([]Marker, len(fields))
		for i, f := range fields {
			row[i] = Marker(f)
		}
		grid = append(grid, row)
	}
	if len(grid) == 0 {
		return nil, ErrParseEmpty
	}
	return grid, nil
}

// ParseSymbolGrid parses sliding-tile grid text: one line per row,
// symbols separated by whitespace, the blank written as "*". Blank lines
// are skipped. Shape and blank-count validation is left to
// NewSlidingTile.
func ParseSymbolGrid(text string) ([][]string, error) {
	var grid [][]string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		grid = append(grid, fields)
	}
	if len(grid) == 0 {
		return nil, ErrParseEmpty
	}
	return grid, nil
}
