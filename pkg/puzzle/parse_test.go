package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMarkerGrid(t *testing.T) {
	grid, err := ParseMarkerGrid("* * .\n\n# . *\n")
	require.NoError(t, err)

	assert.Equal(t, [][]Marker{
		{MarkerPeg, MarkerPeg, MarkerEmpty},
		{MarkerUnused, MarkerEmpty, MarkerPeg},
	}, grid)
}

func TestParseMarkerGridEmpty(t *testing.T) {
	_, err := ParseMarkerGrid("\n  \n")
	assert.ErrorIs(t, err, ErrParseEmpty)
}

func TestParseSymbolGridRoundTrip(t *testing.T) {
	text := "* 2 3\n1 4 5"

	grid, err := ParseSymbolGrid(text)
	require.NoError(t, err)
	goal, err := ParseSymbolGrid("1 2 3\n4 5 *")
	require.NoError(t, err)

	s, err := NewSlidingTile(grid, goal)
	require.NoError(t, err)
	assert.Equal(t, text, s.String(), "parsing then rendering preserves the text form")
}
