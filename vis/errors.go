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

import "errors"

// ErrNegativeValue signals that a sequence holds a value outside the
// non-negative domain an algorithm requires.
var ErrNegativeValue = errors.New("negative value in sequence")

// ErrUnknownDistribution signals an unsupported input distribution name.
var ErrUnknownDistribution = errors.New("unknown input distribution")

// ErrInvalidLength signals a negative sequence length.
var ErrInvalidLength = errors.New("invalid sequence length")
