package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	dict, err := Read(strings.NewReader("same\ncost\n\n  came  \nCost\n"))
	require.NoError(t, err)

	assert.Len(t, dict, 4)
	assert.True(t, dict.Contains("same"))
	assert.True(t, dict.Contains("came"), "surrounding whitespace is trimmed")
	assert.True(t, dict.Contains("Cost"), "case is preserved")
	assert.False(t, dict.Contains(""))
}

func TestReadEmpty(t *testing.T) {
	dict, err := Read(strings.NewReader(""))
	require.NoError(t, err)

	assert.Empty(t, dict)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words")
	require.NoError(t, os.WriteFile(path, []byte("lame\ncame\nsome\n"), 0o644))

	dict, err := Load(path)
	require.NoError(t, err)

	assert.Len(t, dict, 3)
	assert.True(t, dict.Contains("some"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
