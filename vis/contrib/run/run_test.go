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
	"cmp"
	"context"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ajroetker/go-sortvis/vis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eventually = 5 * time.Second

// stepper is an algorithm that only suspends, n times, so tests can count
// suspension points without caring about the sequence.
func stepper(n int) vis.Algorithm[int] {
	return vis.Algorithm[int]{
		Key: "stepper",
		Sort: func(p vis.Port[int]) {
			for i := 0; i < n; i++ {
				if p.ShouldStop() {
					return
				}
				p.Delay()
			}
		},
	}
}

// bubble is a local copy so the run package tests stay free of the sort
// package.
func bubble(p vis.Port[int]) {
	n := p.Len()
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if p.ShouldStop() {
				return
			}
			if p.Compare(j, j+1) > 0 {
				p.Swap(j, j+1)
			}
		}
	}
}

func countSteps(counter *atomic.Int64) Observer[int] {
	return ObserverFunc[int](func(vis.Step, vis.View[int]) {
		counter.Add(1)
	})
}

func TestSpeedDelay(t *testing.T) {
	assert.Equal(t, 101*time.Millisecond, SpeedDelay(0))
	assert.Equal(t, 51*time.Millisecond, SpeedDelay(50))
	assert.Equal(t, 1*time.Millisecond, SpeedDelay(100))
	assert.Equal(t, 1*time.Millisecond, SpeedDelay(250))
	assert.Equal(t, 101*time.Millisecond, SpeedDelay(-3))
}

func TestDelay(t *testing.T) {
	var nilDelay *Delay
	assert.Zero(t, nilDelay.Get())

	d := NewDelay(-time.Second)
	assert.Zero(t, d.Get())

	d.Set(3 * time.Millisecond)
	assert.Equal(t, 3*time.Millisecond, d.Get())

	d.SetSpeed(91)
	assert.Equal(t, 10*time.Millisecond, d.Get())
}

func TestStart_Validation(t *testing.T) {
	ctx := context.Background()

	_, err := Start(ctx, ArgsRun[int]{Compare: cmp.Compare[int]})
	assert.ErrorIs(t, err, ErrNilSortFunc)

	_, err = Start(ctx, ArgsRun[int]{Algorithm: stepper(1)})
	assert.ErrorIs(t, err, ErrNilCompare)

	errOdd := assert.AnError
	algo := vis.Algorithm[int]{
		Key:   "picky",
		Sort:  bubble,
		Check: func([]int) error { return errOdd },
	}
	_, err = Start(ctx, ArgsRun[int]{Sequence: []int{1}, Algorithm: algo, Compare: cmp.Compare[int]})
	assert.ErrorIs(t, err, ErrPrecondition)
	assert.ErrorIs(t, err, errOdd)
}

func TestTracker_Counting(t *testing.T) {
	var got []vis.Counters
	algo := vis.Algorithm[int]{
		Key: "ops",
		Sort: func(p vis.Port[int]) {
			p.Compare(0, 1)
			p.CompareValues(p.Get(0), p.Get(1))
			p.Swap(0, 1)
			p.Set(2, 7)
			p.Mark(vis.MarkPivot, 0, 1, 2)
			p.Delay()
		},
	}

	res, err := Execute(context.Background(), ArgsRun[int]{
		Sequence:  []int{1, 2, 3},
		Algorithm: algo,
		Compare:   cmp.Compare[int],
		Observer: ObserverFunc[int](func(_ vis.Step, view vis.View[int]) {
			got = append(got, view.Counters())
		}),
	})
	require.NoError(t, err)

	want := []vis.Counters{
		{Comparisons: 1, Accesses: 2}, // Compare
		{Comparisons: 2, Accesses: 4}, // two Gets, then CompareValues
		{Comparisons: 2, Accesses: 6}, // Swap
		{Comparisons: 2, Accesses: 7}, // Set, then Mark, then Delay
	}
	assert.Equal(t, want, got)
	assert.Equal(t, want[len(want)-1], res.Counters)
	assert.True(t, res.Completed)
	assert.Equal(t, 3, res.Size)
	assert.Equal(t, "ops", res.Algorithm)
}

func TestTracker_Marks(t *testing.T) {
	type seen struct {
		op    vis.Op
		marks []vis.Mark
	}
	var frames []seen

	algo := vis.Algorithm[int]{
		Key: "marks",
		Sort: func(p vis.Port[int]) {
			p.Mark(vis.MarkPivot, 3)
			p.Mark(vis.MarkSorted, 0)
			p.Compare(1, 3)
			p.Swap(1, 2)
			p.Mark(vis.MarkNormal, 0)
			p.Delay()
		},
	}

	data := []int{4, 3, 2, 1}
	_, err := Execute(context.Background(), ArgsRun[int]{
		Sequence:  data,
		Algorithm: algo,
		Compare:   cmp.Compare[int],
		Observer: ObserverFunc[int](func(step vis.Step, view vis.View[int]) {
			marks := make([]vis.Mark, view.Len())
			for i := range marks {
				marks[i] = view.MarkAt(i)
			}
			frames = append(frames, seen{op: step.Op, marks: marks})
		}),
	})
	require.NoError(t, err)
	require.Len(t, frames, 3)

	n, c, s, p, d := vis.MarkNormal, vis.MarkComparing, vis.MarkSwapping, vis.MarkPivot, vis.MarkSorted
	// The comparison of 1 with the pivot at 3 shows both as comparing.
	assert.Equal(t, seen{vis.OpCompare, []vis.Mark{d, c, n, c}}, frames[0])
	// The swap replaces the transient marks; the pivot shows again.
	assert.Equal(t, seen{vis.OpSwap, []vis.Mark{d, s, s, p}}, frames[1])
	assert.Equal(t, seen{vis.OpDelay, []vis.Mark{n, s, s, p}}, frames[2])
	assert.Equal(t, []int{4, 2, 3, 1}, data)
}

func TestTracker_OutOfRangePanics(t *testing.T) {
	algo := vis.Algorithm[int]{
		Key:  "oob",
		Sort: func(p vis.Port[int]) { p.Compare(0, p.Len()) },
	}

	assert.Panics(t, func() {
		_, _ = Execute(context.Background(), ArgsRun[int]{
			Sequence:  []int{1, 2},
			Algorithm: algo,
			Compare:   cmp.Compare[int],
		})
	})
}

func TestRun_FinishClearsMarks(t *testing.T) {
	var finished Result
	data := []int{3, 1, 2}
	r, err := Start(context.Background(), ArgsRun[int]{
		Sequence: data,
		Algorithm: vis.Algorithm[int]{Key: "bubble", Sort: func(p vis.Port[int]) {
			bubble(p)
			p.Mark(vis.MarkSorted, 0, 1, 2)
		}},
		Compare:  cmp.Compare[int],
		OnFinish: func(res Result) { finished = res },
	})
	require.NoError(t, err)

	res := r.Wait()
	assert.False(t, r.Running())
	assert.Equal(t, res, finished)
	assert.Equal(t, []int{1, 2, 3}, data)
	for i := range data {
		assert.Equal(t, vis.MarkNormal, r.tracker.MarkAt(i))
	}
}

func TestRun_StopInterruptsDelay(t *testing.T) {
	var steps atomic.Int64
	r, err := Start(context.Background(), ArgsRun[int]{
		Algorithm: stepper(1000),
		Compare:   cmp.Compare[int],
		Delay:     NewDelay(time.Hour),
		Observer:  countSteps(&steps),
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return steps.Load() == 1 }, eventually, time.Millisecond)
	r.Stop()
	r.Stop()

	select {
	case <-r.Done():
	case <-time.After(eventually):
		t.Fatal("run did not unwind after stop")
	}
	res := r.Wait()
	assert.False(t, res.Completed)
	assert.Equal(t, int64(1), steps.Load())
}

func TestRun_ContextCancelStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var steps atomic.Int64
	r, err := Start(ctx, ArgsRun[int]{
		Algorithm: stepper(1000),
		Compare:   cmp.Compare[int],
		Delay:     NewDelay(time.Hour),
		Observer:  countSteps(&steps),
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return steps.Load() == 1 }, eventually, time.Millisecond)
	cancel()

	select {
	case <-r.Done():
	case <-time.After(eventually):
		t.Fatal("run did not unwind after cancel")
	}
	assert.False(t, r.Wait().Completed)
}

func TestRun_DelayChangeAppliesToRunningRun(t *testing.T) {
	var steps atomic.Int64
	delay := NewDelay(0)
	r, err := Start(context.Background(), ArgsRun[int]{
		Algorithm: stepper(1_000_000),
		Compare:   cmp.Compare[int],
		Delay:     delay,
		Observer: ObserverFunc[int](func(vis.Step, vis.View[int]) {
			if steps.Add(1) == 5 {
				delay.Set(time.Hour)
			}
		}),
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return steps.Load() >= 5 }, eventually, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int64(5), steps.Load())
	assert.True(t, r.Running())

	r.Stop()
	assert.False(t, r.Wait().Completed)
}

func TestRun_PauseAndStep(t *testing.T) {
	var steps atomic.Int64
	r, err := Start(context.Background(), ArgsRun[int]{
		Algorithm: stepper(10),
		Compare:   cmp.Compare[int],
		Observer:  countSteps(&steps),
		Paused:    true,
	})
	require.NoError(t, err)
	assert.True(t, r.Paused())

	// The observer sees a step before the gate holds it.
	require.Eventually(t, func() bool { return steps.Load() == 1 }, eventually, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int64(1), steps.Load())

	r.Step()
	require.Eventually(t, func() bool { return steps.Load() == 2 }, eventually, time.Millisecond)
	r.Step()
	require.Eventually(t, func() bool { return steps.Load() == 3 }, eventually, time.Millisecond)
	assert.True(t, r.Running())

	r.Resume()
	assert.False(t, r.Paused())
	res := r.Wait()
	assert.True(t, res.Completed)
	assert.Equal(t, int64(10), steps.Load())
}

func TestRun_StopReleasesPausedRun(t *testing.T) {
	r, err := Start(context.Background(), ArgsRun[int]{
		Algorithm: stepper(10),
		Compare:   cmp.Compare[int],
		Paused:    true,
	})
	require.NoError(t, err)

	r.Stop()
	select {
	case <-r.Done():
	case <-time.After(eventually):
		t.Fatal("paused run did not unwind after stop")
	}
	assert.False(t, r.Wait().Completed)
}

func TestGate_StepWhileRunningIsIgnored(t *testing.T) {
	g := newGate()
	g.step()
	assert.False(t, g.isPaused())
	assert.Zero(t, g.steps)

	g.pause()
	g.step()
	g.step()
	assert.Equal(t, 2, g.steps)

	stop := make(chan struct{})
	g.wait(stop)
	g.wait(stop)
	assert.Zero(t, g.steps)

	close(stop)
	g.wait(stop)
}

func TestObservers_FanOut(t *testing.T) {
	var a, b atomic.Int64
	obs := Observers[int]{countSteps(&a), nil, countSteps(&b)}

	_, err := Execute(context.Background(), ArgsRun[int]{
		Algorithm: stepper(4),
		Compare:   cmp.Compare[int],
		Observer:  obs,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), a.Load())
	assert.Equal(t, int64(4), b.Load())
}

func TestController_StartStopsActiveRun(t *testing.T) {
	var steps atomic.Int64
	var finished []Result
	ctrl, err := NewController(ArgsController[int]{
		Sequence: []int{5, 4, 3, 2, 1},
		Compare:  cmp.Compare[int],
		Delay:    NewDelay(time.Hour),
		Observer: countSteps(&steps),
		OnFinish: func(res Result) { finished = append(finished, res) },
	})
	require.NoError(t, err)

	first, err := ctrl.Start(context.Background(), vis.Algorithm[int]{Key: "first", Sort: bubble})
	require.NoError(t, err)
	require.Eventually(t, func() bool { return steps.Load() == 1 }, eventually, time.Millisecond)
	assert.Same(t, first, ctrl.Active())

	_, err = ctrl.Snapshot()
	assert.ErrorIs(t, err, ErrRunActive)

	second, err := ctrl.Start(context.Background(), vis.Algorithm[int]{Key: "second", Sort: bubble})
	require.NoError(t, err)
	assert.False(t, first.Running())
	assert.False(t, first.Wait().Completed)
	assert.Same(t, second, ctrl.Active())

	ctrl.Stop()
	assert.Nil(t, ctrl.Active())
	require.Len(t, finished, 2)
	assert.Equal(t, "first", finished[0].Algorithm)
	assert.Equal(t, "second", finished[1].Algorithm)

	snap, err := ctrl.Snapshot()
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5}, snap)
}

func TestController_ResetAndRerun(t *testing.T) {
	ctrl, err := NewController(ArgsController[int]{
		Sequence: []int{2, 1},
		Compare:  cmp.Compare[int],
	})
	require.NoError(t, err)

	r, err := ctrl.Start(context.Background(), vis.Algorithm[int]{Key: "bubble", Sort: bubble})
	require.NoError(t, err)
	assert.True(t, r.Wait().Completed)

	ctrl.Reset([]int{9, 7, 8})
	r, err = ctrl.Start(context.Background(), vis.Algorithm[int]{Key: "bubble", Sort: bubble})
	require.NoError(t, err)
	r.Wait()

	snap, err := ctrl.Snapshot()
	require.NoError(t, err)
	assert.True(t, slices.IsSorted(snap))
	assert.Equal(t, []int{7, 8, 9}, snap)
}

func TestController_Validation(t *testing.T) {
	_, err := NewController(ArgsController[int]{})
	assert.ErrorIs(t, err, ErrNilCompare)

	ctrl, err := NewController(ArgsController[int]{Compare: cmp.Compare[int]})
	require.NoError(t, err)
	_, err = ctrl.Start(context.Background(), vis.Algorithm[int]{Key: "nil"})
	assert.ErrorIs(t, err, ErrNilSortFunc)
}
