// Package parallel provides a small fork/join helper for splitting
// element-wise work across CPU cores.
package parallel

import (
	"runtime"
	"sync"
)

// For splits the half-open range [0, items) into per-core chunks and runs fn
// on each chunk concurrently, returning once every chunk has finished.
func For(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	workers := runtime.NumCPU()
	if workers > items {
		workers = items
	}
	chunk := (items + workers - 1) / workers

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * chunk
		end := start + chunk
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ForWithThreshold runs fn sequentially over the whole range when items is at
// or below threshold, where goroutine overhead would dominate, and falls back
// to For otherwise.
func ForWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	For(items, fn)
}
