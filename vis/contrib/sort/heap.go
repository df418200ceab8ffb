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

// Heap builds a max-heap by sifting down from the last parent, then
// repeatedly swaps the root behind the shrinking heap boundary and
// restores the heap.
func Heap[T any](p vis.Port[T]) {
	n := p.Len()

	for i := n/2 - 1; i >= 0; i-- {
		if p.ShouldStop() {
			return
		}
		siftDown(p, i, n)
	}

	for i := n - 1; i > 0; i-- {
		if p.ShouldStop() {
			return
		}
		p.Swap(0, i)
		p.Mark(vis.MarkSorted, i)
		siftDown(p, 0, i)
	}
}

// siftDown moves the element at i down the heap of size n until neither
// child is greater. It iterates rather than recurses.
func siftDown[T any](p vis.Port[T], i, n int) {
	for {
		if p.ShouldStop() {
			return
		}

		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && p.Compare(left, largest) > 0 {
			largest = left
		}
		if right < n && p.Compare(right, largest) > 0 {
			largest = right
		}

		if largest == i {
			return
		}

		p.Swap(i, largest)
		i = largest
	}
}
