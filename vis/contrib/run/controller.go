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
	"slices"
	"sync"

	"github.com/ajroetker/go-sortvis/vis"
	"github.com/pkg/errors"
)

// ArgsController holds the arguments of NewController. Observer and
// OnFinish run on the run's goroutine and must not call back into the
// Controller, which may be waiting for that goroutine.
type ArgsController[T any] struct {
	Sequence []T
	Compare  func(a, b T) int
	Delay    *Delay
	Observer Observer[T]
	OnFinish func(Result)
}

// Controller owns one sequence and allows at most one active run over it.
// Starting a run stops the active one and waits for it to unwind first.
type Controller[T any] struct {
	mu       sync.Mutex
	seq      []T
	compare  func(a, b T) int
	delay    *Delay
	observer Observer[T]
	onFinish func(Result)
	active   *Run[T]
}

// NewController creates a controller over args.Sequence.
func NewController[T any](args ArgsController[T]) (*Controller[T], error) {
	if args.Compare == nil {
		return nil, ErrNilCompare
	}

	return &Controller[T]{
		seq:      args.Sequence,
		compare:  args.Compare,
		delay:    args.Delay,
		observer: args.Observer,
		onFinish: args.OnFinish,
	}, nil
}

// Start stops the active run, if any, waits for it, then starts algo over
// the controller's sequence.
func (c *Controller[T]) Start(ctx context.Context, algo vis.Algorithm[T]) (*Run[T], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopActiveLocked()

	r, err := Start(ctx, ArgsRun[T]{
		Sequence:  c.seq,
		Algorithm: algo,
		Compare:   c.compare,
		Delay:     c.delay,
		Observer:  c.observer,
		OnFinish:  c.onFinish,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "starting %s", algo.Key)
	}

	c.active = r
	return r, nil
}

// Stop stops the active run and waits for it to unwind. It is a no-op when
// no run is active.
func (c *Controller[T]) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopActiveLocked()
}

// Reset stops the active run and replaces the sequence.
func (c *Controller[T]) Reset(seq []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopActiveLocked()
	c.seq = seq
}

// Active returns the run in progress, or nil.
func (c *Controller[T]) Active() *Run[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil || !c.active.Running() {
		return nil
	}
	return c.active
}

// Snapshot returns a copy of the sequence. It fails with ErrRunActive while
// a run is in progress; hosts read a running sequence through an Observer.
func (c *Controller[T]) Snapshot() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != nil && c.active.Running() {
		return nil, ErrRunActive
	}
	return slices.Clone(c.seq), nil
}

func (c *Controller[T]) stopActiveLocked() {
	if c.active == nil {
		return
	}

	if c.active.Running() {
		log.Debug("stopping active run", "algorithm", c.active.Algorithm())
	}
	c.active.Stop()
	c.active.Wait()
	c.active = nil
}
