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

import (
	"fmt"

	"github.com/ajroetker/go-sortvis/vis"
	"golang.org/x/exp/constraints"
)

// Radix is an LSD radix sort in base RadixBase. Each pass reads every
// element into one of RadixBase buckets by digit and writes the buckets
// back in order, so it performs no pairwise comparisons: every element
// moved counts as one access to read and one to write.
//
// Values must be non-negative; use CheckNonNegative before starting a run.
// A negative value reaching Radix is a contract violation and panics.
func Radix[T constraints.Integer](p vis.Port[T]) {
	if p.Len() == 0 {
		return
	}

	maxVal, ok := radixMax(p)
	if !ok {
		return
	}

	base := T(RadixBase)
	for exp := T(1); maxVal/exp > 0; exp *= base {
		if p.ShouldStop() {
			return
		}
		if !radixPass(p, exp) {
			return
		}
		if exp > maxVal/base {
			// The next exponent would exceed every value and may overflow T.
			return
		}
	}
}

// radixMax reads every element once and returns the largest.
func radixMax[T constraints.Integer](p vis.Port[T]) (T, bool) {
	var maxVal T
	for i := 0; i < p.Len(); i++ {
		if p.ShouldStop() {
			return 0, false
		}
		p.Mark(vis.MarkWorking, i)
		v := p.Get(i)
		if v < 0 {
			panic(fmt.Errorf("sort: radix: %w: %v at index %d", vis.ErrNegativeValue, v, i))
		}
		maxVal = max(maxVal, v)
		p.Delay()
		p.Mark(vis.MarkNormal, i)
	}
	return maxVal, true
}

// radixPass distributes the sequence into buckets by the digit selected by
// exp and writes the buckets back. Once the distribution is complete the
// write-back always finishes; after a stop it just no longer suspends.
// It reports whether the run may continue.
func radixPass[T constraints.Integer](p vis.Port[T], exp T) bool {
	var buckets [RadixBase][]T
	base := T(RadixBase)

	n := p.Len()
	for i := 0; i < n; i++ {
		if p.ShouldStop() {
			return false
		}
		p.Mark(vis.MarkWorking, i)
		v := p.Get(i)
		d := int((v / exp) % base)
		buckets[d] = append(buckets[d], v)
		p.Delay()
		p.Mark(vis.MarkNormal, i)
	}

	stopped := false
	k := 0
	for d := range buckets {
		for _, v := range buckets[d] {
			if !stopped && p.ShouldStop() {
				stopped = true
			}
			p.Set(k, v)
			if !stopped {
				p.Mark(vis.MarkWorking, k)
				p.Delay()
				p.Mark(vis.MarkNormal, k)
			}
			k++
		}
	}
	return !stopped
}

// CheckNonNegative reports an error wrapping vis.ErrNegativeValue for the
// first negative value in seq.
func CheckNonNegative[T constraints.Integer](seq []T) error {
	for i, v := range seq {
		if v < 0 {
			return fmt.Errorf("%w: %v at index %d", vis.ErrNegativeValue, v, i)
		}
	}
	return nil
}
