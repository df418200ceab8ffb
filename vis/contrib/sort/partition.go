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

// Quick sorts with two pointers scanning inward around the last element of
// each range. The pivot ends at its final index, then both sides are
// sorted as index ranges of the same sequence.
func Quick[T any](p vis.Port[T]) {
	quickRange(p, 0, p.Len()-1)
}

// quickRange sorts [lo, hi]. It recurses into the smaller side and loops on
// the larger one to keep the depth logarithmic.
func quickRange[T any](p vis.Port[T], lo, hi int) {
	for lo < hi {
		if p.ShouldStop() {
			return
		}

		mid, ok := partitionLR(p, lo, hi)
		if !ok {
			return
		}

		if mid-lo < hi-mid {
			quickRange(p, lo, mid-1)
			lo = mid + 1
		} else {
			quickRange(p, mid+1, hi)
			hi = mid - 1
		}
	}
}

// partitionLR moves elements less than the pivot a[hi] left of its final
// index and greater ones right of it, then swaps the pivot into place.
// Elements equal to the pivot may land on either side. It reports false
// when the run was stopped before the pivot was placed.
func partitionLR[T any](p vis.Port[T], lo, hi int) (int, bool) {
	p.Mark(vis.MarkPivot, hi)
	defer p.Mark(vis.MarkNormal, hi)

	i, j := lo, hi-1
	for i <= j {
		if p.ShouldStop() {
			return 0, false
		}

		for i <= j {
			if p.ShouldStop() {
				return 0, false
			}
			if p.Compare(i, hi) >= 0 {
				break
			}
			i++
		}
		for i <= j {
			if p.ShouldStop() {
				return 0, false
			}
			if p.Compare(j, hi) <= 0 {
				break
			}
			j--
		}

		// a[i] >= pivot >= a[j]. When i == j the element equals the pivot
		// and both pointers step past it.
		if i <= j {
			if i < j {
				p.Swap(i, j)
			}
			i++
			j--
		}
	}

	if i != hi {
		p.Swap(i, hi)
	}
	return i, true
}
