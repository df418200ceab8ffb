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

package config

import "errors"

// ErrUnknownAlgorithm signals an algorithm key that is not in the catalogue.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// ErrInvalidSize signals a sequence size below one.
var ErrInvalidSize = errors.New("invalid sequence size")

// ErrInvalidSpeed signals a speed outside 0..100.
var ErrInvalidSpeed = errors.New("invalid speed")

// ErrInvalidWorkers signals a negative worker count.
var ErrInvalidWorkers = errors.New("invalid worker count")

// ErrMissingAddress signals metrics enabled without a listen address.
var ErrMissingAddress = errors.New("missing metrics address")
