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

package vis

// Port is the only path through which an algorithm reads, compares and
// mutates the sequence it sorts. See the package documentation for the
// counting and suspension rules of each method.
type Port[T any] interface {
	// Len returns the length of the sequence. It is fixed for a run.
	Len() int

	// Compare returns a negative number, zero or a positive number as the
	// value at i is less than, equal to or greater than the value at j.
	Compare(i, j int) int

	// CompareValues orders two values that were already read through Get.
	CompareValues(a, b T) int

	Swap(i, j int)
	Get(i int) T
	Set(i int, v T)

	// Mark sets the highlight class of the given indices. MarkNormal clears.
	Mark(class Mark, indices ...int)
	UnmarkAll()

	// Delay is a bare suspension point for work that neither compares nor
	// swaps.
	Delay()

	ShouldStop() bool
}

// View is the read side a host sees between suspension points.
type View[T any] interface {
	Len() int
	At(i int) T
	MarkAt(i int) Mark
	Counters() Counters
}

// Counters are the operation totals of one run.
type Counters struct {
	Comparisons uint64
	Accesses    uint64
}

// Add returns the element-wise sum of c and o.
func (c Counters) Add(o Counters) Counters {
	return Counters{
		Comparisons: c.Comparisons + o.Comparisons,
		Accesses:    c.Accesses + o.Accesses,
	}
}
