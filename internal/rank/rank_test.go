package rank_test

import (
	"testing"

	"github.com/lorenzo-stoakes/wordle-solver/internal/match"
	"github.com/lorenzo-stoakes/wordle-solver/internal/rank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMatrix(t *testing.T, guesses, solutions []string) *match.Matrix {
	t.Helper()
	m, err := match.NewMatrix(guesses, solutions)
	require.NoError(t, err)
	return m
}

func TestTopEarlyExitOnUniquePartition(t *testing.T) {
	guesses := []string{"abcde", "abcdf", "zzzzz"}
	solutions := []string{"abcde", "abcdf"}
	m := buildMatrix(t, guesses, solutions)

	got := rank.Top(m, []int{0, 1}, 10)
	require.Len(t, got, 1)
	assert.Less(t, got[0].Avg, float32(1))
}

func TestTopRespectsLimitAndTieBreak(t *testing.T) {
	guesses := []string{"abcde", "fghij", "klmno", "pqrst"}
	solutions := []string{"abcde", "fghij", "klmno", "pqrst"}
	m := buildMatrix(t, guesses, solutions)

	got := rank.Top(m, []int{0, 1, 2, 3}, 2)
	assert.LessOrEqual(t, len(got), 2)
	for i := 1; i < len(got); i++ {
		if got[i-1].Avg == got[i].Avg {
			assert.Less(t, got[i-1].Guess, got[i].Guess)
		} else {
			assert.Less(t, got[i-1].Avg, got[i].Avg)
		}
	}
}

func TestTopLimitClampedToGMinus1(t *testing.T) {
	guesses := []string{"abcde", "fghij"}
	solutions := []string{"abcde", "fghij"}
	m := buildMatrix(t, guesses, solutions)

	got := rank.Top(m, []int{0, 1}, 1000)
	assert.LessOrEqual(t, len(got), 1)
}

// TestMonotonicity checks spec.md §8 invariant 6: for any guess g,
// U(g, F1) <= U(g, F2) whenever F1 subseteq F2.
func TestMonotonicity(t *testing.T) {
	guesses := []string{"zzzzz", "abcde", "fghij", "klmno"}
	solutions := []string{"abcde", "fghij", "klmno"}
	m := buildMatrix(t, guesses, solutions)

	distinct := func(g int, feasible []int) int {
		seen := make(map[match.Pattern]bool)
		for _, s := range feasible {
			seen[m.At(g, s)] = true
		}
		return len(seen)
	}

	f1 := []int{0}
	f2 := []int{0, 1, 2}
	for g := 0; g < m.G; g++ {
		assert.LessOrEqual(t, distinct(g, f1), distinct(g, f2))
	}
}
