// Copyright 2025 The go-vgi Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool splits per-pixel band arithmetic across a fixed set of
// goroutines. A Pool is created once, typically by the server or CLI, and
// shared by every evaluation it runs.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	out, err := entry.EvaluateParallel(pool, bands, nil)
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent set of workers. It is safe for concurrent use; calls
// from several goroutines share the same workers.
type Pool struct {
	numWorkers int
	minChunk   int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// DefaultMinChunk is the smallest number of pixels handed to one worker.
// Splitting shorter runs costs more in synchronisation than it saves.
const DefaultMinChunk = 4096

// New starts a pool with numWorkers goroutines. If numWorkers <= 0 it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		minChunk:   DefaultMinChunk,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// SetMinChunk sets the smallest range ParallelFor gives a single worker.
// Values below 1 are treated as 1. Call before sharing the pool.
func (p *Pool) SetMinChunk(n int) {
	p.minChunk = max(n, 1)
}

// MinChunk returns the current minimum chunk size.
func (p *Pool) MinChunk() int {
	return p.minChunk
}

// Close shuts the workers down after pending work completes. It is safe to
// call more than once; a closed pool runs everything on the caller.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor calls fn over contiguous sub-ranges covering [0, n) and
// blocks until all of them return. Ranges are disjoint, so fn may write
// out[start:end] without locking.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p.closed.Load() {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, (n+p.minChunk-1)/p.minChunk)
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			wg.Done()
			continue
		}
		p.workC <- workItem{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ParallelForBatched hands out batches of batchSize indices by atomic work
// stealing. It suits uneven work such as raster rows of differing cost.
func (p *Pool) ParallelForBatched(n int, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	if p.closed.Load() {
		fn(0, n)
		return
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers == 1 {
		fn(0, n)
		return
	}

	var nextBatch atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					start := (int(nextBatch.Add(1)) - 1) * batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}
