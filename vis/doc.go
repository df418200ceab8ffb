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

// Package vis defines the data model shared by the instrumented sorting
// engine and the hosts that visualize it.
//
// An algorithm never touches a slice directly. It drives a [Port], and every
// comparison, swap and write it performs goes through that port, which
// counts it, marks the touched indices for display and, for comparisons and
// swaps, suspends for the current step delay so a host can redraw.
//
// # Port contract
//
//   - Compare(i, j) reads the live values at i and j, counts one comparison
//     and two accesses, and suspends.
//   - CompareValues(a, b) compares two values already read through the port
//     (merge heads, for instance); one comparison, no accesses, suspends.
//   - Swap(i, j) exchanges two elements; two accesses, suspends.
//   - Get(i) and Set(i, v) read and write one element; one access each, no
//     suspension. Algorithms that write with Set call Delay once per element.
//   - Mark and UnmarkAll are display hints with no counter effect.
//   - ShouldStop is a non-blocking poll. Algorithms check it at the top of
//     every loop iteration and every recursion level and return as soon as
//     it reports true, leaving the sequence partially sorted.
//
// The concrete port lives in the run package; the algorithms live in the
// sort package.
//
// # Example Usage
//
//	import (
//	    "cmp"
//	    "context"
//	    "time"
//
//	    "github.com/ajroetker/go-sortvis/vis/contrib/run"
//	    "github.com/ajroetker/go-sortvis/vis/contrib/sort"
//	)
//
//	func Visualize(ctx context.Context, data []int, observer run.Observer[int]) (run.Result, error) {
//	    algo, _ := sort.Lookup("quick")
//	    r, err := run.Start(ctx, run.ArgsRun[int]{
//	        Sequence:  data,
//	        Algorithm: algo,
//	        Compare:   cmp.Compare[int],
//	        Delay:     run.NewDelay(10 * time.Millisecond),
//	        Observer:  observer,
//	    })
//	    if err != nil {
//	        return run.Result{}, err
//	    }
//	    return r.Wait(), nil
//	}
package vis
