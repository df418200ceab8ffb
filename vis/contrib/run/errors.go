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

package run

import "errors"

// ErrNilSortFunc signals an algorithm without a Sort function.
var ErrNilSortFunc = errors.New("nil sort function")

// ErrNilCompare signals a missing ordering function.
var ErrNilCompare = errors.New("nil compare function")

// ErrPrecondition signals that the sequence was rejected by the algorithm's
// input check before the run started.
var ErrPrecondition = errors.New("precondition failed")

// ErrRunActive signals an operation that requires an idle controller.
var ErrRunActive = errors.New("a run is active")
