// Copyright 2025 go-sortvis Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool that runs many
// independent sorting runs side by side. A Pool is created once by a host
// and reused for every race it starts, so repeated races do not respawn
// goroutines.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ForEach(ctx, len(algorithms), func(i int) {
//	    results[i], errs[i] = run.Execute(ctx, argsFor(algorithms[i]))
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines fed through a channel.
type Pool struct {
	numWorkers int
	jobC       chan job
	closeOnce  sync.Once
	closed     atomic.Bool
}

type job struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New starts a pool of numWorkers goroutines. If numWorkers <= 0, it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		jobC:       make(chan job, numWorkers),
	}
	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for j := range p.jobC {
		j.fn()
		j.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once queued jobs are done. It is safe to call
// more than once. A closed pool still serves ForEach, sequentially on the
// caller's goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.jobC)
	})
}

// ForEach calls fn for every index in [0, n) and blocks until all calls
// returned. Workers take the next index as they become free, so one slow
// call does not hold up the others. Once ctx is done no further index is
// handed out; calls already running are left to finish. It returns the
// number of indices fn was called with.
func (p *Pool) ForEach(ctx context.Context, n int, fn func(i int)) int {
	if n <= 0 {
		return 0
	}

	var next, started atomic.Int64
	claim := func() (int, bool) {
		if ctx.Err() != nil {
			return 0, false
		}
		i := int(next.Add(1)) - 1
		if i >= n {
			return 0, false
		}
		started.Add(1)
		return i, true
	}
	drain := func() {
		for {
			i, ok := claim()
			if !ok {
				return
			}
			fn(i)
		}
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		drain()
		return int(started.Load())
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		p.jobC <- job{fn: drain, barrier: &wg}
	}
	wg.Wait()

	return int(started.Load())
}
