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

// Package race runs several algorithms over copies of one input side by
// side and ranks them by the work they did.
//
// Every algorithm gets its own copy of the input and its own run, so the
// runs share nothing but the step delay. With a nil delay a race measures
// operation counts only; a positive delay turns it into a visual
// side-by-side comparison where the cheapest algorithm also finishes first.
package race

import logger "github.com/multiversx/mx-chain-logger-go"

var log = logger.GetOrCreate("vis/race")
