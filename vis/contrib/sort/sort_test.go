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

package sort

import (
	"cmp"
	"context"
	"math/rand"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/ajroetker/go-sortvis/vis"
	"github.com/ajroetker/go-sortvis/vis/contrib/run"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs algo over a copy of input with no step delay.
func execute(t *testing.T, algo vis.Algorithm[int], input []int) ([]int, run.Result) {
	t.Helper()

	data := slices.Clone(input)
	res, err := run.Execute(context.Background(), run.ArgsRun[int]{
		Sequence:  data,
		Algorithm: algo,
		Compare:   cmp.Compare[int],
	})
	require.NoError(t, err)
	return data, res
}

func lookup(t *testing.T, key string) vis.Algorithm[int] {
	t.Helper()

	algo, ok := Lookup(key)
	require.True(t, ok, "unknown algorithm %q", key)
	return algo
}

func randomInts(rng *rand.Rand, n, ceiling int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = rng.Intn(ceiling)
	}
	return data
}

func reference(input []int) []int {
	want := slices.Clone(input)
	slices.Sort(want)
	return want
}

func TestCatalogue_DegenerateInputs(t *testing.T) {
	inputs := map[string][]int{
		"empty":     {},
		"single":    {42},
		"identical": {3, 3, 3, 3, 3},
		"sorted":    {1, 2, 3, 4, 5},
		"reverse":   {5, 4, 3, 2, 1},
		"mixed":     {5, 2, 8, 1, 9},
		"pair":      {2, 1},
		"zeros":     {0, 0, 0},
	}

	for _, algo := range Catalogue() {
		for name, input := range inputs {
			t.Run(algo.Key+"/"+name, func(t *testing.T) {
				got, res := execute(t, algo, input)
				assert.Equal(t, reference(input), got)
				assert.True(t, res.Completed)
				assert.Equal(t, len(input), res.Size)
			})
		}
	}
}

func TestCatalogue_RandomMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	sizes := []int{0, 1, 2, 3, 7, 8, 15, 16, 31, 32, 33, 63, 64, 65, 100, 257}

	for _, algo := range Catalogue() {
		t.Run(algo.Key, func(t *testing.T) {
			for _, n := range sizes {
				for _, ceiling := range []int{1000, n/10 + 1} {
					input := randomInts(rng, n, ceiling)
					got, res := execute(t, algo, input)
					require.Equal(t, reference(input), got, "n=%d ceiling=%d", n, ceiling)
					require.True(t, res.Completed)
				}
			}
		})
	}
}

func TestCatalogue_EmptyCountsNothing(t *testing.T) {
	for _, algo := range Catalogue() {
		got, res := execute(t, algo, []int{})
		assert.Empty(t, got, algo.Key)
		assert.Equal(t, vis.Counters{}, res.Counters, algo.Key)
		assert.True(t, res.Completed, algo.Key)
	}
}

func TestCatalogue_LookupAndNames(t *testing.T) {
	names := Names()
	require.Len(t, names, 13)
	assert.Equal(t, "selection", names[0])

	algo, ok := Lookup("Quick Sort (LR ptrs)")
	require.True(t, ok)
	assert.Equal(t, "quick", algo.Key)

	algo, ok = Lookup(" TIM ")
	require.True(t, ok)
	assert.Equal(t, "tim", algo.Key)

	_, ok = Lookup("bogo")
	assert.False(t, ok)
}

func TestBubble_FullScanComparisons(t *testing.T) {
	got, res := execute(t, lookup(t, "bubble"), []int{5, 2, 8, 1, 9})

	assert.Equal(t, []int{1, 2, 5, 8, 9}, got)
	assert.Equal(t, uint64(10), res.Counters.Comparisons)
}

func TestQuick_AllEqual(t *testing.T) {
	got, res := execute(t, lookup(t, "quick"), []int{3, 3, 3, 3, 3})

	assert.Equal(t, []int{3, 3, 3, 3, 3}, got)
	assert.True(t, res.Completed)
}

func TestInsertion_SortedInputShortCircuits(t *testing.T) {
	got, res := execute(t, lookup(t, "insertion"), []int{1, 2, 3, 4, 5})

	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
	assert.Equal(t, uint64(4), res.Counters.Comparisons)
	// Every access came from a comparison: no swap happened.
	assert.Equal(t, 2*res.Counters.Comparisons, res.Counters.Accesses)
}

func TestMerge_Reverse(t *testing.T) {
	got, res := execute(t, lookup(t, "merge"), []int{5, 4, 3, 2, 1})

	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
	assert.NotZero(t, res.Counters.Comparisons)
}

func TestAlreadySortedIsUnchanged(t *testing.T) {
	const n = 50
	sorted := make([]int, n)
	for i := range sorted {
		sorted[i] = i + 1
	}

	// Comparisons of the adaptive algorithms on sorted input.
	linear := map[string]uint64{
		"insertion": n - 1,
		"cocktail":  n - 1,
		"gnome":     n - 1,
		"bubble":    n * (n - 1) / 2,
		"selection": n * (n - 1) / 2,
	}

	for _, algo := range Catalogue() {
		t.Run(algo.Key, func(t *testing.T) {
			got, res := execute(t, algo, sorted)
			assert.Equal(t, sorted, got)
			if want, ok := linear[algo.Key]; ok {
				assert.Equal(t, want, res.Counters.Comparisons)
			}
		})
	}
}

func TestShell_SortedInputComparisons(t *testing.T) {
	const n = 20
	sorted := make([]int, n)
	for i := range sorted {
		sorted[i] = i
	}

	_, res := execute(t, lookup(t, "shell"), sorted)

	// One comparison per element per gap: gaps 10, 5, 2, 1.
	want := uint64((n - 10) + (n - 5) + (n - 2) + (n - 1))
	assert.Equal(t, want, res.Counters.Comparisons)
}

func TestTim_SingleRunIsInsertion(t *testing.T) {
	input := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}

	_, tim := execute(t, lookup(t, "tim"), input)
	_, insertion := execute(t, lookup(t, "insertion"), input)

	assert.Equal(t, insertion.Counters, tim.Counters)
}

// tagged carries a secondary label that the ordering ignores.
type tagged struct {
	key   int
	label int
}

func compareKeys(a, b tagged) int {
	return cmp.Compare(a.key, b.key)
}

func TestStableAlgorithmsKeepEqualKeyOrder(t *testing.T) {
	stable := map[string]func(vis.Port[tagged]){
		"insertion": Insertion[tagged],
		"merge":     Merge[tagged],
		"tim":       Tim[tagged],
		"bubble":    Bubble[tagged],
		"cocktail":  Cocktail[tagged],
		"gnome":     Gnome[tagged],
	}

	rng := rand.New(rand.NewSource(7))
	for key, sortFn := range stable {
		t.Run(key, func(t *testing.T) {
			for _, n := range []int{5, 40, 150} {
				input := make([]tagged, n)
				for i := range input {
					input[i] = tagged{key: rng.Intn(6), label: i}
				}

				data := slices.Clone(input)
				res, err := run.Execute(context.Background(), run.ArgsRun[tagged]{
					Sequence:  data,
					Algorithm: vis.Algorithm[tagged]{Key: key, Sort: sortFn},
					Compare:   compareKeys,
				})
				require.NoError(t, err)
				require.True(t, res.Completed)

				want := slices.Clone(input)
				slices.SortStableFunc(want, compareKeys)
				assert.Equal(t, want, data, "n=%d", n)
			}
		})
	}

	for _, algo := range Catalogue() {
		if algo.Stable {
			continue
		}
		assert.NotContains(t, stable, algo.Key)
	}
}

func TestRadix_NoComparisons(t *testing.T) {
	input := []int{170, 45, 75, 90, 802, 24, 2, 66}
	got, res := execute(t, lookup(t, "radix"), input)

	assert.Equal(t, reference(input), got)
	assert.Zero(t, res.Counters.Comparisons)

	// One read to find the maximum, then a read and a write per element for
	// each of the three decimal digits of 802.
	n := uint64(len(input))
	assert.Equal(t, n+3*2*n, res.Counters.Accesses)
}

func TestRadix_RejectsNegativeBeforeStart(t *testing.T) {
	_, err := run.Start(context.Background(), run.ArgsRun[int]{
		Sequence:  []int{3, -1, 2},
		Algorithm: lookup(t, "radix"),
		Compare:   cmp.Compare[int],
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, run.ErrPrecondition)
	assert.ErrorIs(t, err, vis.ErrNegativeValue)
}

func TestRadix_NegativeValueWithoutCheckPanics(t *testing.T) {
	unchecked := vis.Algorithm[int]{Key: "radix", Sort: Radix[int]}

	assert.Panics(t, func() {
		_, _ = run.Execute(context.Background(), run.ArgsRun[int]{
			Sequence:  []int{3, -1, 2},
			Algorithm: unchecked,
			Compare:   cmp.Compare[int],
		})
	})
}

func TestRadix_NarrowIntegerDoesNotOverflow(t *testing.T) {
	data := []int8{127, 0, 99, 100, 5, 127, 1}
	res, err := run.Execute(context.Background(), run.ArgsRun[int8]{
		Sequence:  data,
		Algorithm: vis.Algorithm[int8]{Key: "radix", Sort: Radix[int8]},
		Compare:   cmp.Compare[int8],
	})

	require.NoError(t, err)
	assert.True(t, res.Completed)
	assert.Equal(t, []int8{0, 1, 5, 99, 100, 127, 127}, data)
}

func TestCheckNonNegative(t *testing.T) {
	assert.NoError(t, CheckNonNegative([]int{}))
	assert.NoError(t, CheckNonNegative([]int{0, 1, 2}))
	assert.ErrorIs(t, CheckNonNegative([]int{0, -4}), vis.ErrNegativeValue)
	assert.NoError(t, CheckNonNegative([]uint{0, 7}))
}

func TestBitonic_AnyLength(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	algo := lookup(t, "bitonic")

	for n := 0; n <= 70; n++ {
		input := randomInts(rng, n, 50)
		got, _ := execute(t, algo, input)
		require.Equal(t, reference(input), got, "n=%d", n)
	}
}

func TestGreatestPowerOfTwoBelow(t *testing.T) {
	cases := map[int]int{2: 1, 3: 2, 4: 2, 5: 4, 8: 4, 9: 8, 100: 64}
	for n, want := range cases {
		assert.Equal(t, want, greatestPowerOfTwoBelow(n), "n=%d", n)
	}
}

// stopAfterFirstStep starts algo over input with a step delay far longer
// than the test, stops it as soon as the first suspension is observed, and
// returns the result and the sequence.
func stopAfterFirstStep(t *testing.T, algo vis.Algorithm[int], input []int) ([]int, run.Result) {
	t.Helper()

	data := slices.Clone(input)
	first := make(chan struct{})
	var once sync.Once

	r, err := run.Start(context.Background(), run.ArgsRun[int]{
		Sequence:  data,
		Algorithm: algo,
		Compare:   cmp.Compare[int],
		Delay:     run.NewDelay(time.Hour),
		Observer: run.ObserverFunc[int](func(vis.Step, vis.View[int]) {
			once.Do(func() { close(first) })
		}),
	})
	require.NoError(t, err)

	select {
	case <-first:
	case <-time.After(5 * time.Second):
		t.Fatalf("%s never suspended", algo.Key)
	}
	r.Stop()

	select {
	case <-r.Done():
	case <-time.After(5 * time.Second):
		t.Fatalf("%s did not unwind after stop", algo.Key)
	}
	return data, r.Wait()
}

func TestCancellationKeepsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	input := randomInts(rng, 100, 1000)

	for _, algo := range Catalogue() {
		t.Run(algo.Key, func(t *testing.T) {
			got, res := stopAfterFirstStep(t, algo, input)

			assert.False(t, res.Completed)
			assert.ElementsMatch(t, input, got)
			// At most the comparison in flight and one issued before the
			// next stop check.
			assert.LessOrEqual(t, res.Counters.Comparisons, uint64(2))
		})
	}
}

func TestCancellationMidMergeKeepsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	input := randomInts(rng, 64, 1000)

	for _, key := range []string{"merge", "tim", "radix"} {
		for _, after := range []int{10, 70, 150, 400} {
			data := slices.Clone(input)
			steps := 0
			var r *run.Run[int]
			ready := make(chan struct{})

			var err error
			r, err = run.Start(context.Background(), run.ArgsRun[int]{
				Sequence:  data,
				Algorithm: lookup(t, key),
				Compare:   cmp.Compare[int],
				Observer: run.ObserverFunc[int](func(vis.Step, vis.View[int]) {
					steps++
					if steps == after {
						<-ready
						r.Stop()
					}
				}),
			})
			require.NoError(t, err)
			close(ready)

			r.Wait()
			assert.ElementsMatch(t, input, data, "%s stopped after %d steps", key, after)
		}
	}
}

func TestCountersAreMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	input := randomInts(rng, 60, 100)

	for _, algo := range Catalogue() {
		var last vis.Counters
		monotonic := true
		data := slices.Clone(input)

		res, err := run.Execute(context.Background(), run.ArgsRun[int]{
			Sequence:  data,
			Algorithm: algo,
			Compare:   cmp.Compare[int],
			Observer: run.ObserverFunc[int](func(_ vis.Step, view vis.View[int]) {
				c := view.Counters()
				if c.Comparisons < last.Comparisons || c.Accesses < last.Accesses {
					monotonic = false
				}
				last = c
			}),
		})

		require.NoError(t, err)
		assert.True(t, monotonic, algo.Key)
		assert.GreaterOrEqual(t, res.Counters.Comparisons, last.Comparisons, algo.Key)
		assert.GreaterOrEqual(t, res.Counters.Accesses, last.Accesses, algo.Key)
	}
}

func TestSequenceIsPermutationAtEverySuspension(t *testing.T) {
	input := []int{9, 3, 7, 3, 1, 8, 2, 6, 5, 4, 0, 3}

	for _, algo := range Catalogue() {
		data := slices.Clone(input)
		ok := true

		_, err := run.Execute(context.Background(), run.ArgsRun[int]{
			Sequence:  data,
			Algorithm: algo,
			Compare:   cmp.Compare[int],
			Observer: run.ObserverFunc[int](func(step vis.Step, view vis.View[int]) {
				// Merge-style algorithms hold values in scratch while they
				// write back, so only swaps and comparisons of two indices
				// are required to see a full permutation.
				if step.Op == vis.OpSwap || (step.Op == vis.OpCompare && step.I >= 0) {
					snapshot := make([]int, view.Len())
					for i := range snapshot {
						snapshot[i] = view.At(i)
					}
					slices.Sort(snapshot)
					if !slices.Equal(snapshot, reference(input)) {
						ok = false
					}
				}
			}),
		})

		require.NoError(t, err)
		assert.True(t, ok, algo.Key)
	}
}
