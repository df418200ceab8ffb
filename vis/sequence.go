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

import (
	"fmt"
	"math/rand"
	"strings"
)

// Distribution selects the shape of a generated input sequence.
type Distribution uint8

const (
	Random Distribution = iota
	Sorted
	Reverse
	FewUnique
)

// randomCeiling bounds the values of Random sequences.
const randomCeiling = 1000

var distributionNames = map[Distribution]string{
	Random:    "random",
	Sorted:    "sorted",
	Reverse:   "reverse",
	FewUnique: "few-unique",
}

func (d Distribution) String() string {
	if name, ok := distributionNames[d]; ok {
		return name
	}
	return "unknown"
}

// Distributions lists every supported distribution in display order.
func Distributions() []Distribution {
	return []Distribution{Random, Sorted, Reverse, FewUnique}
}

// ParseDistribution maps a case-insensitive name to a Distribution.
func ParseDistribution(name string) (Distribution, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for d, n := range distributionNames {
		if n == lower {
			return d, nil
		}
	}
	return Random, fmt.Errorf("%w: %q", ErrUnknownDistribution, name)
}

// Generate builds a sequence of n values:
//   - Random: uniform in [0, 1000)
//   - Sorted: 1..n
//   - Reverse: n..1
//   - FewUnique: uniform in [0, n/10+1), so most keys repeat
//
// rng may be nil for Sorted and Reverse.
func Generate(n int, d Distribution, rng *rand.Rand) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	seq := make([]int, n)
	switch d {
	case Sorted:
		for i := range seq {
			seq[i] = i + 1
		}
	case Reverse:
		for i := range seq {
			seq[i] = n - i
		}
	case Random:
		for i := range seq {
			seq[i] = rng.Intn(randomCeiling)
		}
	case FewUnique:
		ceiling := n/10 + 1
		for i := range seq {
			seq[i] = rng.Intn(ceiling)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownDistribution, d)
	}
	return seq, nil
}
