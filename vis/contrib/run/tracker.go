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
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ajroetker/go-sortvis/vis"
)

// Tracker is the port a run hands to its algorithm. It owns the sequence
// for the run's lifetime and is the only path through which it is read or
// written. It also serves as the view passed to observers.
//
// Every index is bounds-checked; an out-of-range index is a contract
// violation and panics.
type Tracker[T any] struct {
	seq      []T
	compare  func(a, b T) int
	delay    *Delay
	observer Observer[T]
	gate     *gate

	stopped  atomic.Bool
	stopC    chan struct{}
	stopOnce sync.Once

	comparisons atomic.Uint64
	accesses    atomic.Uint64

	// marks holds the persistent classes. hot holds the indices touched by
	// the last Compare, Swap or Set, shown with hotMark until the next one.
	marks   map[int]vis.Mark
	hot     []int
	hotMark vis.Mark
}

var _ vis.Port[int] = (*Tracker[int])(nil)
var _ vis.View[int] = (*Tracker[int])(nil)

func newTracker[T any](seq []T, compare func(a, b T) int, delay *Delay, observer Observer[T]) *Tracker[T] {
	return &Tracker[T]{
		seq:      seq,
		compare:  compare,
		delay:    delay,
		observer: observer,
		gate:     newGate(),
		stopC:    make(chan struct{}),
		marks:    make(map[int]vis.Mark),
		hot:      make([]int, 0, 2),
	}
}

// Len returns the length of the sequence.
func (t *Tracker[T]) Len() int {
	return len(t.seq)
}

// Compare orders the live values at i and j and suspends.
func (t *Tracker[T]) Compare(i, j int) int {
	t.checkIndex(i)
	t.checkIndex(j)

	t.comparisons.Add(1)
	t.accesses.Add(2)
	t.touch(vis.MarkComparing, i, j)

	c := t.compare(t.seq[i], t.seq[j])
	t.suspend(vis.Step{Op: vis.OpCompare, I: i, J: j})
	return c
}

// CompareValues orders two values the algorithm already read and
// suspends. It counts a comparison but no access.
func (t *Tracker[T]) CompareValues(a, b T) int {
	t.comparisons.Add(1)
	t.touch(vis.MarkComparing)

	c := t.compare(a, b)
	t.suspend(vis.Step{Op: vis.OpCompare, I: -1, J: -1})
	return c
}

// Swap exchanges the values at i and j and suspends.
func (t *Tracker[T]) Swap(i, j int) {
	t.checkIndex(i)
	t.checkIndex(j)

	t.accesses.Add(2)
	t.seq[i], t.seq[j] = t.seq[j], t.seq[i]
	t.touch(vis.MarkSwapping, i, j)

	t.suspend(vis.Step{Op: vis.OpSwap, I: i, J: j})
}

// Get reads the value at i.
func (t *Tracker[T]) Get(i int) T {
	t.checkIndex(i)

	t.accesses.Add(1)
	return t.seq[i]
}

// Set writes v at i. It does not suspend.
func (t *Tracker[T]) Set(i int, v T) {
	t.checkIndex(i)

	t.accesses.Add(1)
	t.seq[i] = v
	t.touch(vis.MarkSwapping, i)
}

// Mark sets the persistent class of the given indices.
func (t *Tracker[T]) Mark(class vis.Mark, indices ...int) {
	for _, i := range indices {
		t.checkIndex(i)
		if class == vis.MarkNormal {
			delete(t.marks, i)
			continue
		}
		t.marks[i] = class
	}
}

// UnmarkAll clears every mark.
func (t *Tracker[T]) UnmarkAll() {
	clear(t.marks)
	t.hot = t.hot[:0]
}

// Delay suspends without touching the sequence.
func (t *Tracker[T]) Delay() {
	t.suspend(vis.Step{Op: vis.OpDelay, I: -1, J: -1})
}

// ShouldStop reports whether the run was asked to stop.
func (t *Tracker[T]) ShouldStop() bool {
	return t.stopped.Load()
}

// At returns the value at i without counting an access.
func (t *Tracker[T]) At(i int) T {
	return t.seq[i]
}

// MarkAt returns the class shown for index i.
func (t *Tracker[T]) MarkAt(i int) vis.Mark {
	for _, h := range t.hot {
		if h == i {
			return t.hotMark
		}
	}
	return t.marks[i]
}

// Counters returns the totals so far. It is safe to call from any
// goroutine.
func (t *Tracker[T]) Counters() vis.Counters {
	return vis.Counters{
		Comparisons: t.comparisons.Load(),
		Accesses:    t.accesses.Load(),
	}
}

func (t *Tracker[T]) stop() {
	t.stopOnce.Do(func() {
		t.stopped.Store(true)
		close(t.stopC)
	})
}

func (t *Tracker[T]) touch(class vis.Mark, indices ...int) {
	t.hot = append(t.hot[:0], indices...)
	t.hotMark = class
}

// suspend is the single suspension point: observer, pause gate, then the
// step delay read fresh from the shared Delay.
func (t *Tracker[T]) suspend(step vis.Step) {
	if t.observer != nil {
		t.observer.Observe(step, t)
	}

	t.gate.wait(t.stopC)

	d := t.delay.Get()
	if d <= 0 || t.stopped.Load() {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-t.stopC:
	}
}

func (t *Tracker[T]) checkIndex(i int) {
	if i < 0 || i >= len(t.seq) {
		panic(fmt.Sprintf("run: index %d out of range [0, %d)", i, len(t.seq)))
	}
}
