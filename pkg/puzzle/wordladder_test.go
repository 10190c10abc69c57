package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryContains(t *testing.T) {
	d := NewDictionary("same", "cost")

	assert.True(t, d.Contains("same"))
	assert.False(t, d.Contains("Same"), "membership is case-sensitive")
	assert.False(t, d.Contains("lame"))
	assert.False(t, Dictionary(nil).Contains("same"))
}

func TestWordLadderExtensionsScenario(t *testing.T) {
	dict := NewDictionary("lame", "came", "some", "word", "lost")
	w := NewWordLadder("same", "cost", dict)

	exts := w.Extensions()
	require.Len(t, exts, 3)

	var got []string
	for _, e := range exts {
		ladder, ok := e.(*WordLadder)
		require.True(t, ok)
		got = append(got, ladder.from)
	}
	assert.ElementsMatch(t, []string{"lame", "came", "some"}, got)
	assert.False(t, w.IsSolved())
}

func TestWordLadderExtensionsProperties(t *testing.T) {
	dict := NewDictionary("cold", "cord", "card", "ward", "warm", "wart")
	w := NewWordLadder("cord", "warm", dict)

	for _, e := range w.Extensions() {
		ladder, ok := e.(*WordLadder)
		require.True(t, ok)

		assert.NotEqual(t, "cord", ladder.from, "no self-transition is possible")
		assert.True(t, dict.Contains(ladder.from), "every successor is a dictionary member")
		assert.Equal(t, "warm", ladder.to, "target word is carried forward unchanged")

		diff := 0
		require.Len(t, ladder.from, len("cord"), "moves preserve word length")
		for i := range ladder.from {
			if ladder.from[i] != "cord"[i] {
				diff++
			}
		}
		assert.Equal(t, 1, diff, "every successor differs in exactly one position")
	}
}

func TestWordLadderExtensionsEmptyDictionary(t *testing.T) {
	w := NewWordLadder("same", "cost", NewDictionary())

	assert.Empty(t, w.Extensions())
}

func TestWordLadderIsSolved(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		dict Dictionary
		want bool
	}{
		{
			name: "words differ",
			from: "same",
			to:   "cost",
			dict: NewDictionary("time", "space"),
			want: false,
		},
		{
			name: "words equal",
			from: "cost",
			to:   "cost",
			dict: NewDictionary("time", "space"),
			want: true,
		},
		{
			name: "words equal with empty dictionary",
			from: "cost",
			to:   "cost",
			dict: NewDictionary(),
			want: true,
		},
		{
			name: "case-sensitive comparison",
			from: "Cost",
			to:   "cost",
			dict: NewDictionary(),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWordLadder(tt.from, tt.to, tt.dict)
			assert.Equal(t, tt.want, w.IsSolved())
		})
	}
}

func TestWordLadderEqual(t *testing.T) {
	dictA := NewDictionary("life", "eternal", "universe")
	dictB := NewDictionary("tom", "harry", "bob")

	base := NewWordLadder("same", "cost", dictA)
	same := NewWordLadder("same", "cost", NewDictionary("life", "eternal", "universe"))
	otherWords := NewWordLadder("time", "real", dictB)
	otherDict := NewWordLadder("same", "cost", dictB)

	assert.True(t, base.Equal(same), "equality compares dictionary contents, not identity")
	assert.False(t, base.Equal(otherWords))
	assert.False(t, base.Equal(otherDict))

	tile, err := NewSlidingTile([][]string{{Blank}}, [][]string{{Blank}})
	require.NoError(t, err)
	assert.False(t, base.Equal(tile))
}

func TestWordLadderString(t *testing.T) {
	w := NewWordLadder("same", "cost", nil)

	assert.Equal(t, "same -> cost", w.String())
	assert.Equal(t, "ladder\nsame -> cost", w.Key())
}
