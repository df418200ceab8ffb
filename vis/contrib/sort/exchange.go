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

// Selection scans the unsorted suffix for its minimum and swaps it into
// place, at most one swap per position. The running minimum is marked as
// the pivot while the scan proceeds.
func Selection[T any](p vis.Port[T]) {
	n := p.Len()
	for i := 0; i < n-1; i++ {
		if p.ShouldStop() {
			return
		}

		minIdx := i
		p.Mark(vis.MarkPivot, minIdx)
		for j := i + 1; j < n; j++ {
			if p.ShouldStop() {
				return
			}
			if p.Compare(j, minIdx) < 0 {
				p.Mark(vis.MarkNormal, minIdx)
				minIdx = j
				p.Mark(vis.MarkPivot, minIdx)
			}
		}
		p.Mark(vis.MarkNormal, minIdx)

		if minIdx != i {
			p.Swap(i, minIdx)
		}
		p.Mark(vis.MarkSorted, i)
	}
}

// Insertion shifts each element left with adjacent swaps until its left
// neighbour is not greater. Equal keys are never swapped, so it is stable.
func Insertion[T any](p vis.Port[T]) {
	insertionRange(p, 0, p.Len())
}

// insertionRange insertion-sorts [lo, hi).
func insertionRange[T any](p vis.Port[T], lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		if p.ShouldStop() {
			return
		}

		p.Mark(vis.MarkWorking, i)
		for j := i; j > lo; j-- {
			if p.ShouldStop() {
				return
			}
			if p.Compare(j-1, j) <= 0 {
				break
			}
			p.Swap(j-1, j)
		}
		p.Mark(vis.MarkNormal, i)
	}
}

// Bubble compares every adjacent pair of the shrinking unsorted prefix on
// every pass. It does not stop early when a pass makes no swap, so it
// always performs n*(n-1)/2 comparisons.
func Bubble[T any](p vis.Port[T]) {
	n := p.Len()
	for i := 0; i < n-1; i++ {
		if p.ShouldStop() {
			return
		}
		for j := 0; j < n-i-1; j++ {
			if p.ShouldStop() {
				return
			}
			if p.Compare(j, j+1) > 0 {
				p.Swap(j, j+1)
			}
		}
		p.Mark(vis.MarkSorted, n-i-1)
	}
}

// Cocktail alternates forward and backward bubble passes, shrinking the
// upper bound after a forward pass and the lower bound after a backward
// one. It stops as soon as a pass performs no swap.
func Cocktail[T any](p vis.Port[T]) {
	start, end := 0, p.Len()-1
	swapped := true

	for swapped {
		if p.ShouldStop() {
			return
		}

		swapped = false
		for i := start; i < end; i++ {
			if p.ShouldStop() {
				return
			}
			if p.Compare(i, i+1) > 0 {
				p.Swap(i, i+1)
				swapped = true
			}
		}
		if !swapped {
			return
		}
		p.Mark(vis.MarkSorted, end)
		end--

		swapped = false
		for i := end - 1; i >= start; i-- {
			if p.ShouldStop() {
				return
			}
			if p.Compare(i, i+1) > 0 {
				p.Swap(i, i+1)
				swapped = true
			}
		}
		p.Mark(vis.MarkSorted, start)
		start++
	}
}

// Gnome walks a single pointer forward while neighbours are in order and
// steps back after swapping an out-of-order pair.
func Gnome[T any](p vis.Port[T]) {
	n := p.Len()
	i := 1
	for i < n {
		if p.ShouldStop() {
			return
		}
		if i == 0 || p.Compare(i-1, i) <= 0 {
			i++
			continue
		}
		p.Swap(i-1, i)
		i--
	}
}

// Comb runs gapped bubble passes, shrinking the gap by a factor of 1.3,
// and finishes with gap 1 passes until one of them makes no swap.
func Comb[T any](p vis.Port[T]) {
	n := p.Len()
	if n < 2 {
		return
	}

	gap := n
	sorted := false
	for !sorted {
		if p.ShouldStop() {
			return
		}

		gap = gap * combShrinkNum / combShrinkDen
		if gap <= 1 {
			gap = 1
			sorted = true
		}

		for i := 0; i+gap < n; i++ {
			if p.ShouldStop() {
				return
			}
			if p.Compare(i, i+gap) > 0 {
				p.Swap(i, i+gap)
				sorted = false
			}
		}
	}
}

// Shell runs gapped insertion passes with gaps n/2, n/4, ..., 1. The last
// pass is a plain insertion sort.
func Shell[T any](p vis.Port[T]) {
	n := p.Len()
	for gap := n / 2; gap > 0; gap /= 2 {
		if p.ShouldStop() {
			return
		}
		for i := gap; i < n; i++ {
			if p.ShouldStop() {
				return
			}
			for j := i; j >= gap; j -= gap {
				if p.ShouldStop() {
					return
				}
				if p.Compare(j-gap, j) <= 0 {
					break
				}
				p.Swap(j-gap, j)
			}
		}
	}
}
