// Package parallel fans read-only work out over a bounded number of goroutines.
//
// It is used for evaluation sweeps, where many forward passes run against a
// network that nothing is training at the same time.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	return Workers(runtime.NumCPU())
}

// Workers returns a config using n goroutines. n <= 1 runs sequentially.
func Workers(n int) Config {
	return Config{
		Enabled:      n > 1,
		NumWorkers:   max(n, 1),
		MinChunkSize: 16, // One item is a whole forward pass.
	}
}

// chunks splits [0, n) into contiguous ranges, one per goroutine.
// It returns a single range when parallelism is disabled or n is too small.
func chunks(n int, cfg Config) [][2]int {
	if n <= 0 {
		return nil
	}
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < cfg.MinChunkSize {
		return [][2]int{{0, n}}
	}

	size := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)
	out := make([][2]int, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		out = append(out, [2]int{start, min(start+size, n)})
	}
	return out
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	ranges := chunks(n, cfg)
	if len(ranges) <= 1 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	for _, r := range ranges {
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(r[0], r[1])
	}
	wg.Wait()
}

// Sum returns f(0) + ... + f(n-1).
// Partial sums are combined in chunk order, so the result does not depend on
// goroutine scheduling.
func Sum(n int, f func(i int) float64, cfg Config) float64 {
	ranges := chunks(n, cfg)
	partials := make([]float64, len(ranges))

	For(len(ranges), func(k int) {
		s := 0.0
		for i := ranges[k][0]; i < ranges[k][1]; i++ {
			s += f(i)
		}
		partials[k] = s
	}, Config{Enabled: len(ranges) > 1, NumWorkers: len(ranges), MinChunkSize: 1})

	total := 0.0
	for _, p := range partials {
		total += p
	}
	return total
}
