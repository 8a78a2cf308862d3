package wordlist_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lorenzo-stoakes/wordle-solver/internal/wordlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWordList(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadTrimsLowercasesAndSkipsBlankLines(t *testing.T) {
	path := writeWordList(t, "Apple\n\nMANGO\n  grape  \n")
	words, err := wordlist.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "mango", "grape"}, words)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := wordlist.Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestValidateLength(t *testing.T) {
	require.NoError(t, wordlist.ValidateLength([]string{"apple", "mango"}, 5))
	err := wordlist.ValidateLength([]string{"apple", "figs"}, 5)
	require.Error(t, err)
}

func TestValidateUnique(t *testing.T) {
	require.NoError(t, wordlist.ValidateUnique([]string{"apple", "mango"}))
	err := wordlist.ValidateUnique([]string{"apple", "mango", "apple"})
	require.Error(t, err)
}

func TestIndexOf(t *testing.T) {
	words := []string{"apple", "mango", "grape"}
	idx, ok := wordlist.IndexOf(words, "mango")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = wordlist.IndexOf(words, "missing")
	assert.False(t, ok)
}
