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

// Package term is an interactive terminal shell for the sorting engine. It
// draws the sequence as a bar chart coloured by mark class, shows the run
// counters and takes keyboard commands to start, stop, pause, step and
// reconfigure runs.
//
// The shell never reads the sequence while a run is in progress. Frames are
// copied out of the run's view by an observer, on the run's goroutine, and
// handed to the event loop through a channel that keeps only the latest
// frame.
package term

import logger "github.com/multiversx/mx-chain-logger-go"

var log = logger.GetOrCreate("vis/term")
