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

// Algorithm describes one instrumented sort.
type Algorithm[T any] struct {
	// Key is the short identifier used on the command line ("quick").
	Key string
	// Name is the display name ("Quick Sort (LR ptrs)").
	Name string
	// Sort drives the port until the sequence is ascending or ShouldStop
	// reports true.
	Sort func(p Port[T])
	// Stable reports whether equal keys keep their input order.
	Stable bool
	// Check, when set, validates the input domain before a run starts.
	Check func(seq []T) error
}
