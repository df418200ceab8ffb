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

import "github.com/ajroetker/go-sortvis/vis"

// Bitonic sorts with a bitonic merge network adapted to any length.
//
// No padding is used. A range of n elements is split into halves of n/2
// and n-n/2 that are sorted in opposite directions, which makes the range
// bitonic. The merge then compare-exchanges i with i+m, where m is the
// greatest power of two below n, for the first n-m indices only, and
// merges [lo, lo+m) and [lo+m, lo+n) recursively. For power-of-two lengths
// this is the classic network.
func Bitonic[T any](p vis.Port[T]) {
	bitonicSort(p, 0, p.Len(), true)
}

func bitonicSort[T any](p vis.Port[T], lo, n int, ascending bool) {
	if n <= 1 || p.ShouldStop() {
		return
	}

	m := n / 2
	bitonicSort(p, lo, m, !ascending)
	bitonicSort(p, lo+m, n-m, ascending)
	bitonicMerge(p, lo, n, ascending)
}

func bitonicMerge[T any](p vis.Port[T], lo, n int, ascending bool) {
	if n <= 1 || p.ShouldStop() {
		return
	}

	m := greatestPowerOfTwoBelow(n)
	for i := lo; i < lo+n-m; i++ {
		if p.ShouldStop() {
			return
		}
		compareExchange(p, i, i+m, ascending)
	}
	bitonicMerge(p, lo, m, ascending)
	bitonicMerge(p, lo+m, n-m, ascending)
}

// compareExchange orders a[i] and a[j] (i < j) in the given direction.
func compareExchange[T any](p vis.Port[T], i, j int, ascending bool) {
	c := p.Compare(i, j)
	if (ascending && c > 0) || (!ascending && c < 0) {
		p.Swap(i, j)
	}
}

// greatestPowerOfTwoBelow returns the largest power of two strictly less
// than n, for n >= 2.
func greatestPowerOfTwoBelow(n int) int {
	k := 1
	for k < n {
		k <<= 1
	}
	return k >> 1
}
