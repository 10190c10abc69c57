package puzzle

// Dictionary is the fixed, externally supplied set of acceptable words
// constraining legal word-ladder substitutions. Membership tests are
// O(1); a Dictionary is treated as read-only for the lifetime of every
// puzzle that references it.
type Dictionary map[string]struct{}

// NewDictionary builds a Dictionary from the given words.
func NewDictionary(words ...string) Dictionary {
	d := make(Dictionary, len(words))
	for _, w := range words {
		d[w] = struct{}{}
	}
	return d
}

// Contains reports whether word is a member of the dictionary.
func (d Dictionary) Contains(word string) bool {
	_, ok := d[word]
	return ok
}

// equal reports whether both dictionaries hold the same words.
func (d Dictionary) equal(other Dictionary) bool {
	if len(d) != len(other) {
		return false
	}
	for w := range d {
		if _, ok := other[w]; !ok {
			return false
		}
	}
	return true
}

// ladderAlphabet is the candidate letter set for single-character
// substitutions, fixed regardless of the words' actual characters.
const ladderAlphabet = "abcdefghijklmnopqrstuvwxyz"

// WordLadder is one configuration of a word-ladder puzzle: a current
// word stepped towards a target word, changing one character per move,
// with every intermediate word drawn from the dictionary.
type WordLadder struct {
	from  string
	to    string
	words Dictionary
}

// NewWordLadder creates a word-ladder configuration. No validation is
// performed; the caller is responsible for supplying words of equal
// length and a dictionary appropriate to them.
func NewWordLadder(from, to string, words Dictionary) *WordLadder {
	return &WordLadder{from: from, to: to, words: words}
}

// Extensions returns one configuration per dictionary word reachable by
// substituting a single character of the current word. The letter
// already present at a position is never a candidate there, so no
// successor equals the current word. Target and dictionary are carried
// forward unchanged.
func (w *WordLadder) Extensions() []Puzzle {
	var configs []Puzzle
	buf := []byte(w.from)
	for i := 0; i < len(buf); i++ {
		orig := buf[i]
		for k := 0; k < len(ladderAlphabet); k++ {
			c := ladderAlphabet[k]
			if c == orig {
				continue
			}
			buf[i] = c
			candidate := string(buf)
			if w.words.Contains(candidate) {
				configs = append(configs, &WordLadder{from: candidate, to: w.to, words: w.words})
			}
		}
		buf[i] = orig
	}
	return configs
}

// IsSolved reports whether the current word equals the target word,
// case-sensitively. Dictionary contents are irrelevant.
func (w *WordLadder) IsSolved() bool {
	return w.from == w.to
}

// Equal reports whether other is a WordLadder with the same current
// word, target word, and dictionary contents.
func (w *WordLadder) Equal(other Puzzle) bool {
	o, ok := other.(*WordLadder)
	if !ok {
		return false
	}
	return w.from == o.from && w.to == o.to && w.words.equal(o.words)
}

// Key returns the deduplication key for this configuration.
func (w *WordLadder) Key() string {
	return "ladder\n" + w.String()
}

// String renders the configuration as "<currentWord> -> <targetWord>".
func (w *WordLadder) String() string {
	return w.from + " -> " + w.to
}
