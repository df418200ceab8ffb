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

// Mark is the highlight class attached to an index. It is a display hint
// only and never influences the result of a sort.
type Mark uint8

const (
	MarkNormal Mark = iota
	MarkComparing
	MarkSwapping
	MarkPivot
	MarkWorking
	MarkSorted

	numMarks
)

var markNames = [numMarks]string{
	MarkNormal:    "normal",
	MarkComparing: "comparing",
	MarkSwapping:  "swapping",
	MarkPivot:     "pivot",
	MarkWorking:   "working",
	MarkSorted:    "sorted",
}

func (m Mark) String() string {
	if m >= numMarks {
		return "unknown"
	}
	return markNames[m]
}

// Transient reports whether the mark is replaced by the next instrumented
// operation. Comparing and Swapping follow the operation that set them;
// the other classes stay until overwritten or cleared.
func (m Mark) Transient() bool {
	return m == MarkComparing || m == MarkSwapping
}

// Op identifies the port operation that reached a suspension point.
type Op uint8

const (
	OpCompare Op = iota
	OpSwap
	OpDelay
)

func (o Op) String() string {
	switch o {
	case OpCompare:
		return "compare"
	case OpSwap:
		return "swap"
	case OpDelay:
		return "delay"
	}
	return "unknown"
}

// Step describes one suspension point. J is -1 when the operation involves
// a single index, and both are -1 for bare delays and value comparisons.
type Step struct {
	Op Op
	I  int
	J  int
}
