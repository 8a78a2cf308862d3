package workerpool_test

import (
	"runtime"
	"sync"
	"testing"

	"github.com/lorenzo-stoakes/wordle-solver/internal/workerpool"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaultsToDoubleGOMAXPROCS(t *testing.T) {
	p := workerpool.New(0)
	assert.Equal(t, 2*runtime.GOMAXPROCS(0), p.Cap())
}

func TestTryAcquireRespectsCap(t *testing.T) {
	p := workerpool.New(2)
	assert.True(t, p.TryAcquire())
	assert.True(t, p.TryAcquire())
	assert.False(t, p.TryAcquire(), "pool should be saturated at cap=2")

	p.Release()
	assert.True(t, p.TryAcquire(), "releasing a slot should free capacity")
}

func TestConcurrentAcquireNeverExceedsCap(t *testing.T) {
	const cap = 4
	p := workerpool.New(cap)
	var wg sync.WaitGroup
	var mu sync.Mutex
	maxObserved := 0
	current := 0

	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !p.TryAcquire() {
				return
			}
			defer p.Release()
			mu.Lock()
			current++
			if current > maxObserved {
				maxObserved = current
			}
			mu.Unlock()
			mu.Lock()
			current--
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, maxObserved, cap)
}
