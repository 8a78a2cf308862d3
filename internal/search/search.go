// Package search implements the recursive, memoized, depth-bounded beam
// search that builds the decision tree: at each node it asks
// internal/rank for the top-K candidate guesses, partitions the feasible
// solutions by feedback pattern for each, recurses on the non-trivial
// partitions (fanning out through internal/workerpool), and keeps the
// candidate with the lowest average depth to solution.
package search

import (
	"strconv"
	"strings"
	"sync"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/lorenzo-stoakes/wordle-solver/internal/match"
	"github.com/lorenzo-stoakes/wordle-solver/internal/rank"
	"github.com/lorenzo-stoakes/wordle-solver/internal/tree"
	"github.com/lorenzo-stoakes/wordle-solver/internal/workerpool"
)

// DefaultMaxGuesses is MAX_GUESSES from spec.md §4.3: the number of guesses
// a solution must be reachable within to count as solved.
const DefaultMaxGuesses = 6

// Engine holds everything a Solve call needs: the immutable match matrix,
// the memo table (mutex-protected, per spec.md §4.4), and the worker pool
// candidates fan out through.
//
// Engine is not reentrant: a single instance runs one Solve at a time (spec.md
// §5). Two independent Engines may run concurrently.
type Engine struct {
	matrix     *match.Matrix
	maxGuesses int
	pruneLimit int
	pool       *workerpool.Pool

	memoMu sync.Mutex
	memo   map[string]*tree.Node
	arena  *tree.Arena

	runningMu sync.Mutex
	running   bool
}

// New builds a search Engine over the given match matrix.
func New(m *match.Matrix) *Engine {
	return &Engine{
		matrix:     m,
		maxGuesses: DefaultMaxGuesses,
		pool:       workerpool.New(0),
	}
}

// WithMaxGuesses overrides MAX_GUESSES (default 6). Panics on a non-positive
// value.
func (e *Engine) WithMaxGuesses(maxGuesses int) *Engine {
	if maxGuesses <= 0 {
		exceptions.Panicf("invalid WithMaxGuesses(%d): must be positive", maxGuesses)
	}
	e.maxGuesses = maxGuesses
	return e
}

// WithWorkers overrides the worker pool cap (default 2*GOMAXPROCS, see
// internal/workerpool.New). A cap <= 0 restores the default.
func (e *Engine) WithWorkers(cap int) *Engine {
	e.pool = workerpool.New(cap)
	return e
}

// Solve builds the decision tree for every solution in the match matrix,
// considering up to pruneLimit candidate guesses at each node (clamped to
// G-1). It is the "solve(prune_limit)" entry point of spec.md §4.3.
func (e *Engine) Solve(pruneLimit int) (*tree.Result, error) {
	e.runningMu.Lock()
	if e.running {
		e.runningMu.Unlock()
		return nil, errors.Errorf("search.Engine.Solve is not reentrant: a search is already in progress")
	}
	e.running = true
	e.runningMu.Unlock()
	defer func() {
		e.runningMu.Lock()
		e.running = false
		e.runningMu.Unlock()
	}()

	if pruneLimit < 1 {
		pruneLimit = 1
	}
	e.pruneLimit = min(pruneLimit, e.matrix.G-1)
	e.memo = make(map[string]*tree.Node)
	e.arena = &tree.Arena{}

	feasible := make([]int, e.matrix.S)
	for s := range feasible {
		feasible[s] = s
	}
	klog.V(1).Infof("search: solving for %d solutions, %d valid guesses, prune_limit=%d, workers=%d",
		e.matrix.S, e.matrix.G, e.pruneLimit, e.pool.Cap())

	root := e.search(feasible, 0)
	return &tree.Result{Arena: e.arena, Root: root, NumSolutions: e.matrix.S}, nil
}

// search is the recursive call of spec.md §4.3: memoized, depth-bounded,
// beam-limited by internal/rank.
func (e *Engine) search(feasible []int, depth int) *tree.Node {
	key := memoKey(feasible)

	e.memoMu.Lock()
	cached, ok := e.memo[key]
	e.memoMu.Unlock()
	if ok && cached.FitsBudget(depth, e.maxGuesses) {
		return cached
	}

	candidates := rank.Top(e.matrix, feasible, e.pruneLimit)
	block := e.arena.NewBlock(len(candidates))
	for i, c := range candidates {
		block[i].GuessIndex = c.Guess
	}

	e.exploreCandidates(block, feasible, depth)

	chosen := selectBest(block, depth, e.maxGuesses)
	block[0], block[chosen] = block[chosen], block[0]

	e.memoMu.Lock()
	e.memo[key] = block[0]
	e.memoMu.Unlock()
	return block[0]
}

// exploreCandidates runs traverseMatches for every candidate node, fanning
// out across the worker pool per spec.md §4.4: every candidate but the last
// either runs synchronously (pool saturated, or there's only one candidate)
// or is spawned as a worker; the last candidate always runs on the calling
// goroutine, which then joins every spawned worker before returning.
func (e *Engine) exploreCandidates(block []*tree.Node, feasible []int, depth int) {
	var wg sync.WaitGroup
	for i, node := range block {
		isLast := i == len(block)-1
		if !isLast && len(block) > 1 && e.pool.TryAcquire() {
			wg.Add(1)
			go func(node *tree.Node) {
				defer wg.Done()
				defer e.pool.Release()
				e.traverseMatches(node, feasible, depth)
			}(node)
			continue
		}
		e.traverseMatches(node, feasible, depth)
	}
	wg.Wait()
}

// traverseMatches partitions feasible by match[g, ·] and recurses on each
// non-trivial partition in ascending pattern order, stopping early once a
// partition reports that the depth budget can no longer be met.
func (e *Engine) traverseMatches(node *tree.Node, feasible []int, depth int) {
	buckets := partition(e.matrix, node.GuessIndex, feasible)
	for pattern := match.Pattern(0); int(pattern) < match.NumPatterns; pattern++ {
		bucket := buckets[pattern]
		if !e.traverseMatch(node, depth, bucket) {
			return
		}
	}
}

// traverseMatch handles one feedback bucket: empty buckets are a no-op,
// singletons are solved immediately via markSolved, and everything else
// recurses and folds the child's contribution into node. It returns false to
// signal the caller should stop examining further patterns for this guess
// (the depth-budget prune of spec.md §4.3).
func (e *Engine) traverseMatch(node *tree.Node, depth int, feasible []int) bool {
	switch len(feasible) {
	case 0:
		return true
	case 1:
		markSolved(node, e.matrix, feasible[0])
		return true
	}

	child := e.search(feasible, depth+1)
	node.Children = append(node.Children, child)
	node.SolvedCount += child.SolvedCount
	node.TotalDepth += child.SolvedCount + child.TotalDepth
	if child.MinDepth > 0 && (node.MinDepth == 0 || child.MinDepth+1 < node.MinDepth) {
		node.MinDepth = child.MinDepth + 1
	}
	return node.FitsBudget(depth, e.maxGuesses)
}

// partition buckets feasible by match[g, ·], preserving ascending order
// within each bucket (feasible itself arrives sorted ascending, and a
// single linear pass over it preserves that per solution index).
func partition(m *match.Matrix, g int, feasible []int) [match.NumPatterns][]int {
	var buckets [match.NumPatterns][]int
	for _, s := range feasible {
		p := m.At(g, s)
		buckets[p] = append(buckets[p], s)
	}
	return buckets
}

// markSolved records that playing node.GuessIndex solves solution s, either
// immediately (g == s) or after one further, now-unambiguous guess.
func markSolved(node *tree.Node, m *match.Matrix, s int) {
	node.SolvedCount++
	node.TotalDepth++
	if m.At(node.GuessIndex, s) == match.AllGreens {
		node.IsLeaf = true
		node.MinDepth = max(node.MinDepth, 1)
		return
	}
	node.Leaves = append(node.Leaves, s)
	node.TotalDepth++
	node.MinDepth = max(node.MinDepth, 2)
}

// selectBest picks the candidate with the lowest average depth among those
// fitting the depth budget, ties broken toward the earlier slot. If no
// candidate fits, it falls back to slot 0 unconditionally (spec.md §4.3
// step 4, the "degenerate tree-elision fallback").
func selectBest(block []*tree.Node, depth, maxGuesses int) int {
	best := -1
	for i, n := range block {
		if !n.FitsBudget(depth, maxGuesses) {
			continue
		}
		if best == -1 || n.AverageDepth() < block[best].AverageDepth() {
			best = i
		}
	}
	if best == -1 {
		return 0
	}
	return best
}

// memoKey canonicalizes a feasible-solution set (already sorted ascending
// on arrival, see partition) into a comparable map key.
func memoKey(feasible []int) string {
	var b strings.Builder
	for i, s := range feasible {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(s))
	}
	return b.String()
}
