// Package rank implements the guess ranker: given the still-feasible
// solutions at a search node, it scores every valid guess by average
// feasible solutions per distinct feedback pattern and returns the top-K
// guesses by that score.
package rank

import (
	"container/heap"

	"github.com/chewxy/math32"
	"github.com/lorenzo-stoakes/wordle-solver/internal/match"
)

// Candidate is a scored guess: Avg is the average-solutions-per-pattern
// score from spec.md §4.2 (lower is better).
type Candidate struct {
	Guess int
	Avg   float32
}

// Top returns the K best-scoring guesses for feasible (nonempty), where
// K = min(limit, m.G-1). Ties are broken by ascending guess index.
//
// If any guess resolves every feasible solution to its own singleton
// partition (avg < 1), Top returns immediately with just that one guess:
// one more turn suffices regardless of what else is explored.
func Top(m *match.Matrix, feasible []int, limit int) []Candidate {
	seen := make([]bool, match.NumPatterns)
	n := float32(len(feasible))

	for g := 0; g < m.G; g++ {
		distinct, delta := score(m, g, feasible, seen)
		avg := (n - delta) / float32(distinct)
		if avg < 1 {
			return []Candidate{{Guess: g, Avg: avg}}
		}
	}

	limit = min(limit, m.G-1)
	if limit <= 0 {
		return nil
	}

	h := &beam{limit: limit}
	for g := 0; g < m.G; g++ {
		distinct, delta := score(m, g, feasible, seen)
		avg := (n - delta) / float32(distinct)
		h.offer(Candidate{Guess: g, Avg: avg})
	}
	return h.sorted()
}

// score computes U(g, F) (distinct pattern count) and delta (1 if g is
// itself one of the feasible solutions, i.e. matches AllGreens against some
// s in F) for a single guess. seen is caller-owned scratch space reused
// across guesses to avoid an allocation per guess.
func score(m *match.Matrix, g int, feasible []int, seen []bool) (distinct int, delta float32) {
	for _, s := range feasible {
		seen[m.At(g, s)] = false
	}
	for _, s := range feasible {
		p := m.At(g, s)
		if !seen[p] {
			seen[p] = true
			distinct++
		}
		if p == match.AllGreens {
			delta = 1
		}
	}
	return
}

// beam is a bounded max-heap on Candidate keeping the `limit` best (smallest
// Avg, ties broken toward smaller Guess) seen so far. This is the
// "partial-sort beam" spec.md §9 calls for: O(G log K) instead of sorting
// all G candidates.
type beam struct {
	limit int
	items []Candidate
}

// worse reports whether a is the one that should be evicted first: either a
// meaningfully larger Avg, or an equal (within float noise) Avg with a
// strictly larger Guess index.
func worse(a, b Candidate) bool {
	if !closeEnough(a.Avg, b.Avg) {
		return a.Avg > b.Avg
	}
	return a.Guess > b.Guess
}

// closeEnough treats two scores as tied if they differ by less than float32
// rounding noise.
func closeEnough(a, b float32) bool {
	return math32.Abs(a-b) < 1e-6
}

func (b *beam) Len() int            { return len(b.items) }
func (b *beam) Less(i, j int) bool  { return worse(b.items[i], b.items[j]) }
func (b *beam) Swap(i, j int)       { b.items[i], b.items[j] = b.items[j], b.items[i] }
func (b *beam) Push(x interface{})  { b.items = append(b.items, x.(Candidate)) }
func (b *beam) Pop() interface{} {
	old := b.items
	n := len(old)
	item := old[n-1]
	b.items = old[:n-1]
	return item
}

func (b *beam) offer(c Candidate) {
	if b.Len() < b.limit {
		heap.Push(b, c)
		return
	}
	if worse(b.items[0], c) {
		heap.Pop(b)
		heap.Push(b, c)
	}
}

func (b *beam) sorted() []Candidate {
	out := make([]Candidate, len(b.items))
	copy(out, b.items)
	// Ascending by Avg, then ascending by Guess -- the reverse of "worse".
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && worse(out[j-1], out[j]); j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
