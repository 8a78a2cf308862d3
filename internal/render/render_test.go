package render_test

import (
	"testing"

	"github.com/lorenzo-stoakes/wordle-solver/internal/match"
	"github.com/lorenzo-stoakes/wordle-solver/internal/render"
	"github.com/lorenzo-stoakes/wordle-solver/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinesSingleSolution(t *testing.T) {
	m, err := match.NewMatrix([]string{"apple"}, []string{"apple"})
	require.NoError(t, err)
	result, err := search.New(m).Solve(8)
	require.NoError(t, err)

	// spec.md §6's own worked example: word, pattern, word -- even an
	// immediate all-greens match must render the full triple, not just the
	// guessed word.
	lines := render.Lines(m, result, []string{"apple"}, []string{"apple"})
	require.Len(t, lines, 1)
	assert.Equal(t, "apple GGGGG apple", lines[0])
}

func TestLinesTwoSolutionsAndStats(t *testing.T) {
	guesses := []string{"abcde", "abcdf"}
	m, err := match.NewMatrix(guesses, guesses)
	require.NoError(t, err)
	result, err := search.New(m).Solve(8)
	require.NoError(t, err)

	lines := render.Lines(m, result, guesses, guesses)
	require.Equal(t, []string{
		"abcde GGGGG abcde",
		"abcde GGGG. abcdf",
	}, lines)

	stats := render.ComputeStats(m, result, guesses, guesses)
	assert.Equal(t, 0, stats.Unsolved)
	assert.Equal(t, 1.5, stats.AverageGuesses)
	assert.Equal(t, 1, stats.CountByGuesses[1])
	assert.Equal(t, 1, stats.CountByGuesses[2])
}

func TestLineForUnknownTargetErrors(t *testing.T) {
	guesses := []string{"abcde", "abcdf"}
	m, err := match.NewMatrix(guesses, guesses)
	require.NoError(t, err)
	result, err := search.New(m).Solve(8)
	require.NoError(t, err)

	_, err = render.LineFor(m, result, guesses, guesses, "zzzzz")
	require.Error(t, err)
	var kindErr *match.Error
	require.ErrorAs(t, err, &kindErr)
	assert.Equal(t, match.UnknownTargetSolution, kindErr.Kind)
}

func TestLineForKnownTarget(t *testing.T) {
	guesses := []string{"abcde", "abcdf"}
	m, err := match.NewMatrix(guesses, guesses)
	require.NoError(t, err)
	result, err := search.New(m).Solve(8)
	require.NoError(t, err)

	line, err := render.LineFor(m, result, guesses, guesses, "abcde")
	require.NoError(t, err)
	assert.Equal(t, "abcde GGGGG abcde", line)
}
