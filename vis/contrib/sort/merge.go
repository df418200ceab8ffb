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

// Merge splits at the midpoint, sorts both halves and merges them through
// two scratch buffers sized to each half. Ties take the left element, so
// the sort is stable.
func Merge[T any](p vis.Port[T]) {
	mergeRange(p, 0, p.Len()-1)
}

func mergeRange[T any](p vis.Port[T], l, r int) {
	if l >= r || p.ShouldStop() {
		return
	}

	m := l + (r-l)/2
	mergeRange(p, l, m)
	if p.ShouldStop() {
		return
	}
	mergeRange(p, m+1, r)
	if p.ShouldStop() {
		return
	}
	mergeHalves(p, l, m, r)
}

// Tim insertion-sorts runs of MinRun elements, then merges neighbouring
// runs pairwise with doubling width. A pair whose boundary is already in
// order is left as is.
func Tim[T any](p vis.Port[T]) {
	n := p.Len()
	for lo := 0; lo < n; lo += MinRun {
		if p.ShouldStop() {
			return
		}
		insertionRange(p, lo, min(lo+MinRun, n))
	}

	for size := MinRun; size < n; size *= 2 {
		for left := 0; left < n-size; left += 2 * size {
			if p.ShouldStop() {
				return
			}

			mid := left + size - 1
			right := min(left+2*size-1, n-1)
			if p.Compare(mid, mid+1) <= 0 {
				continue
			}
			mergeHalves(p, left, mid, right)
		}
	}
}

// mergeHalves merges the sorted runs [l, m] and [m+1, r].
//
// If the run is stopped mid-merge the values still held in scratch are
// written back to the unmerged tail without suspending, so [l, r] keeps
// the same multiset of values.
func mergeHalves[T any](p vis.Port[T], l, m, r int) {
	left, ok := readRange(p, l, m+1)
	if !ok {
		return
	}
	right, ok := readRange(p, m+1, r+1)
	if !ok {
		return
	}

	i, j, k := 0, 0, l
	for i < len(left) && j < len(right) {
		if p.ShouldStop() {
			writeBack(p, k, left[i:], right[j:])
			return
		}

		p.Mark(vis.MarkWorking, k)
		if p.CompareValues(left[i], right[j]) <= 0 {
			p.Set(k, left[i])
			i++
		} else {
			p.Set(k, right[j])
			j++
		}
		p.Mark(vis.MarkNormal, k)
		k++
	}

	for _, rest := range [][]T{left[i:], right[j:]} {
		for idx, v := range rest {
			if p.ShouldStop() {
				writeBack(p, k, rest[idx:])
				return
			}
			p.Mark(vis.MarkWorking, k)
			p.Set(k, v)
			p.Delay()
			p.Mark(vis.MarkNormal, k)
			k++
		}
	}
}

// readRange copies [from, to) into a new scratch buffer, suspending once
// per element. Nothing is written, so a stop simply abandons the copy.
func readRange[T any](p vis.Port[T], from, to int) ([]T, bool) {
	buf := make([]T, 0, to-from)
	for i := from; i < to; i++ {
		if p.ShouldStop() {
			return nil, false
		}
		p.Mark(vis.MarkWorking, i)
		buf = append(buf, p.Get(i))
		p.Delay()
		p.Mark(vis.MarkNormal, i)
	}
	return buf, true
}

// writeBack stores the given runs from index k on, without suspending.
func writeBack[T any](p vis.Port[T], k int, runs ...[]T) {
	for _, run := range runs {
		for _, v := range run {
			p.Set(k, v)
			k++
		}
	}
}
