// Package words loads word-ladder dictionaries from newline-delimited
// word lists.
package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mesh-intelligence/puzzles/pkg/puzzle"
)

// Read builds a Dictionary from a newline-delimited word list. Leading
// and trailing whitespace is trimmed from each line and blank lines are
// skipped. Words are kept verbatim; no case folding is applied.
func Read(r io.Reader) (puzzle.Dictionary, error) {
	dict := puzzle.Dictionary{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		dict[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan word list: %w", err)
	}
	return dict, nil
}

// Load reads the word list file at path into a Dictionary.
func Load(path string) (puzzle.Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return Read(f)
}
