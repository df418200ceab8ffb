// Copyright 2025 go-sortvis Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package run

import (
	"context"
	"fmt"
	"time"

	"github.com/ajroetker/go-sortvis/vis"
)

// ArgsRun holds the arguments of Start and Execute.
type ArgsRun[T any] struct {
	// Sequence is sorted in place. It must not be touched by anyone else
	// until the run is done.
	Sequence  []T
	Algorithm vis.Algorithm[T]
	Compare   func(a, b T) int
	// Delay may be nil for a run without pauses between steps.
	Delay    *Delay
	Observer Observer[T]
	// Paused starts the run held at its first suspension point, to be
	// advanced with Step or Resume.
	Paused bool
	// OnFinish, if set, is called on the run's goroutine once the
	// algorithm returned and the marks were cleared.
	OnFinish func(Result)
}

// Result summarizes a finished run.
type Result struct {
	Algorithm string
	Size      int
	Counters  vis.Counters
	// Completed is false when the run was stopped before the algorithm
	// finished; the sequence is then a permutation of the input but not
	// necessarily ordered.
	Completed bool
	Elapsed   time.Duration
}

// Run is one execution of one algorithm over one sequence.
type Run[T any] struct {
	algorithm vis.Algorithm[T]
	tracker   *Tracker[T]
	onFinish  func(Result)
	done      chan struct{}
	result    Result
}

// Start validates args, checks the algorithm's precondition against the
// sequence and drives the algorithm on a new goroutine. Cancelling ctx
// stops the run.
func Start[T any](ctx context.Context, args ArgsRun[T]) (*Run[T], error) {
	r, err := newRun(args)
	if err != nil {
		return nil, err
	}

	go r.execute(ctx)
	return r, nil
}

// Execute is Start followed by Wait.
func Execute[T any](ctx context.Context, args ArgsRun[T]) (Result, error) {
	r, err := newRun(args)
	if err != nil {
		return Result{}, err
	}

	r.execute(ctx)
	return r.result, nil
}

func newRun[T any](args ArgsRun[T]) (*Run[T], error) {
	if args.Algorithm.Sort == nil {
		return nil, ErrNilSortFunc
	}
	if args.Compare == nil {
		return nil, ErrNilCompare
	}
	if args.Algorithm.Check != nil {
		if err := args.Algorithm.Check(args.Sequence); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrPrecondition, args.Algorithm.Key, err)
		}
	}

	tracker := newTracker(args.Sequence, args.Compare, args.Delay, args.Observer)
	if args.Paused {
		tracker.gate.pause()
	}

	return &Run[T]{
		algorithm: args.Algorithm,
		tracker:   tracker,
		onFinish:  args.OnFinish,
		done:      make(chan struct{}),
	}, nil
}

func (r *Run[T]) execute(ctx context.Context) {
	defer close(r.done)

	if ctx != nil && ctx.Done() != nil {
		finished := make(chan struct{})
		defer close(finished)
		go func() {
			select {
			case <-ctx.Done():
				r.Stop()
			case <-finished:
			}
		}()
	}

	size := r.tracker.Len()
	log.Debug("run started", "algorithm", r.algorithm.Key, "size", size)

	start := time.Now()
	r.algorithm.Sort(r.tracker)
	completed := !r.tracker.ShouldStop()
	r.tracker.UnmarkAll()

	r.result = Result{
		Algorithm: r.algorithm.Key,
		Size:      size,
		Counters:  r.tracker.Counters(),
		Completed: completed,
		Elapsed:   time.Since(start),
	}

	log.Debug("run finished",
		"algorithm", r.algorithm.Key,
		"completed", completed,
		"comparisons", r.result.Counters.Comparisons,
		"accesses", r.result.Counters.Accesses,
		"elapsed", r.result.Elapsed,
	)

	if r.onFinish != nil {
		r.onFinish(r.result)
	}
}

// Stop asks the run to stop. It is idempotent and does not wait; use Wait
// for the unwind.
func (r *Run[T]) Stop() {
	r.tracker.stop()
}

// Wait blocks until the run is done and returns its result.
func (r *Run[T]) Wait() Result {
	<-r.done
	return r.result
}

// Done is closed when the run is done.
func (r *Run[T]) Done() <-chan struct{} {
	return r.done
}

// Running reports whether the algorithm is still executing.
func (r *Run[T]) Running() bool {
	select {
	case <-r.done:
		return false
	default:
		return true
	}
}

// Counters returns the run's totals so far.
func (r *Run[T]) Counters() vis.Counters {
	return r.tracker.Counters()
}

// Algorithm returns the key of the algorithm being run.
func (r *Run[T]) Algorithm() string {
	return r.algorithm.Key
}

// Pause holds the run at its next suspension point.
func (r *Run[T]) Pause() {
	r.tracker.gate.pause()
}

// Resume releases a paused run.
func (r *Run[T]) Resume() {
	r.tracker.gate.resume()
}

// Step lets a paused run advance by one suspension point.
func (r *Run[T]) Step() {
	r.tracker.gate.step()
}

// Paused reports whether the run is paused.
func (r *Run[T]) Paused() bool {
	return r.tracker.gate.isPaused()
}
