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

// Package run drives the instrumented algorithms of the sort package: it
// provides the concrete port ([Tracker]), the shared step [Delay], and the
// lifecycle of a single execution ([Run]) and of the host-facing
// [Controller] that allows one active run per sequence.
//
// A run executes on its own goroutine. It suspends at every Compare, Swap
// and Delay of the port: the observer is called first, with a read-only
// view of the sequence that is valid only for the duration of the call,
// then the run waits while paused and finally sleeps for the step delay,
// which is read fresh each time. Stop interrupts the sleep, releases a
// paused run, and makes ShouldStop report true so the algorithm unwinds.
package run

import logger "github.com/multiversx/mx-chain-logger-go"

var log = logger.GetOrCreate("vis/run")
