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
	"strings"

	"github.com/ajroetker/go-sortvis/vis"
)

// Catalogue returns every algorithm instantiated for int, in menu order.
// Each call returns a fresh slice.
func Catalogue() []vis.Algorithm[int] {
	return []vis.Algorithm[int]{
		{Key: "selection", Name: "Selection Sort", Sort: Selection[int]},
		{Key: "insertion", Name: "Insertion Sort", Sort: Insertion[int], Stable: true},
		{Key: "merge", Name: "Merge Sort", Sort: Merge[int], Stable: true},
		{Key: "quick", Name: "Quick Sort (LR ptrs)", Sort: Quick[int]},
		{Key: "heap", Name: "Heap Sort", Sort: Heap[int]},
		{Key: "bubble", Name: "Bubble Sort", Sort: Bubble[int], Stable: true},
		{Key: "cocktail", Name: "Cocktail Shaker Sort", Sort: Cocktail[int], Stable: true},
		{Key: "gnome", Name: "Gnome Sort", Sort: Gnome[int], Stable: true},
		{Key: "comb", Name: "Comb Sort", Sort: Comb[int]},
		{Key: "shell", Name: "Shell Sort", Sort: Shell[int]},
		{Key: "radix", Name: "Radix Sort (LSD)", Sort: Radix[int], Stable: true, Check: CheckNonNegative[int]},
		{Key: "bitonic", Name: "Bitonic Sort", Sort: Bitonic[int]},
		{Key: "tim", Name: "Tim Sort", Sort: Tim[int], Stable: true},
	}
}

// Lookup finds an algorithm by key or by display name, ignoring case.
func Lookup(name string) (vis.Algorithm[int], bool) {
	name = strings.TrimSpace(name)
	for _, algo := range Catalogue() {
		if strings.EqualFold(algo.Key, name) || strings.EqualFold(algo.Name, name) {
			return algo, true
		}
	}
	return vis.Algorithm[int]{}, false
}

// Names returns the keys of the catalogue in menu order.
func Names() []string {
	algos := Catalogue()
	names := make([]string, len(algos))
	for i, algo := range algos {
		names[i] = algo.Key
	}
	return names
}
