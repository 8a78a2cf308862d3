// Package workerpool implements the process-wide bounded fan-out the search
// engine uses to explore distinct candidate guesses at a node in parallel.
//
// Instead of a buffered-channel semaphore, the Pool keeps an atomic counter
// so a caller can ask
// "would acquiring block?" (TryAcquire) and fall back to running synchronously
// on its own goroutine when the answer is no, exactly as spec.md §4.4
// requires.
package workerpool

import (
	"runtime"
	"sync/atomic"
)

// Pool bounds the number of concurrently-active workers across an entire
// search. It has no queue: TryAcquire never blocks, it only reports whether
// the caller may proceed to spawn.
type Pool struct {
	cap    int32
	active atomic.Int32
}

// New returns a Pool capped at cap concurrent workers. cap <= 0 defaults to
// 2*runtime.GOMAXPROCS(0), spec.md §4.4's MAX_WORKERS formula.
func New(cap int) *Pool {
	if cap <= 0 {
		cap = 2 * runtime.GOMAXPROCS(0)
	}
	return &Pool{cap: int32(cap)}
}

// Cap returns the pool's worker cap.
func (p *Pool) Cap() int {
	return int(p.cap)
}

// TryAcquire attempts to reserve one worker slot without blocking. It
// returns false if the pool is already at capacity, in which case the
// caller must run the work synchronously instead of spawning a goroutine.
func (p *Pool) TryAcquire() bool {
	for {
		cur := p.active.Load()
		if cur >= p.cap {
			return false
		}
		if p.active.CompareAndSwap(cur, cur+1) {
			return true
		}
	}
}

// Release returns a worker slot acquired via a successful TryAcquire.
func (p *Pool) Release() {
	p.active.Add(-1)
}
