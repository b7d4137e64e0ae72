// Package parallel provides fork/join helpers for row-independent work.
//
// Every call blocks until all of its work has finished; nothing outlives the
// call that started it.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how For splits work.
type Config struct {
	Enabled      bool // Whether work may be spread over goroutines.
	NumWorkers   int  // Upper bound on goroutines per call.
	MinChunkSize int  // Minimum indices per goroutine.
}

// DefaultConfig returns a config sized to the machine.
//
// MinChunkSize is large enough that the small layers typical of toy
// networks always run sequentially.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
	}
}

// Sequential returns a config that never starts goroutines.
func Sequential() Config {
	return Config{}
}

// For runs f(i) for every i in [0, n).
//
// f must only write state owned by index i. Work runs inline when the config
// is disabled or n is below MinChunkSize.
func For(n int, f func(i int), cfg Config) {
	workers := cfg.NumWorkers
	if !cfg.Enabled || workers < 2 || n < max(cfg.MinChunkSize, 2) {
		for i := range n {
			f(i)
		}
		return
	}

	chunk := max((n+workers-1)/workers, cfg.MinChunkSize, 1)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
