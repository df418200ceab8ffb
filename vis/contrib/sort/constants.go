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

const (
	// MinRun is the length of the runs Tim sorts with insertion sort before
	// merging.
	MinRun = 32

	// RadixBase is the digit base of Radix. Values are bucketed by decimal
	// digit, least significant first.
	RadixBase = 10
)

// Comb shrinks its gap by 1.3 each pass, kept in integers as gap*10/13.
const (
	combShrinkNum = 10
	combShrinkDen = 13
)
