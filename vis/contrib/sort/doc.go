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

// Package sort provides the instrumented sorting algorithms driven by the
// visualizer.
//
// Every algorithm sorts ascending in place and touches the sequence only
// through a [vis.Port]. The algorithms are generic over the element type;
// the ordering comes from the port. [Catalogue] instantiates all of them for
// int and is what hosts present to users.
//
// # Algorithms
//
//   - Exchange sorts: Selection, Insertion, Bubble, Cocktail, Gnome, Comb, Shell
//   - Partitioning: Quick (Hoare-style left/right pointers, last-element pivot)
//   - Merging: Merge, Tim (insertion-sorted runs of [MinRun], merged pairwise)
//   - Selection by heap: Heap
//   - Networks: Bitonic, for any length
//   - Distribution: Radix (LSD, base [RadixBase], non-negative integers)
//
// # Cancellation
//
// Each loop iteration and each recursion level polls ShouldStop and unwinds
// at once when it reports true. Algorithms that hold values in scratch
// buffers (Merge, Tim, Radix) write those values back without suspending
// before they return, so a cancelled run still leaves a permutation of its
// input.
//
// # Recursion depth
//
// Quick recurses into the smaller partition and loops on the larger one, so
// its depth is O(log n) even with adversarial pivots. Merge and Bitonic split
// at the midpoint (depth log2 n). Heap sifts down iteratively.
package sort
