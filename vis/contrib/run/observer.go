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

import "github.com/ajroetker/go-sortvis/vis"

// Observer is notified at every suspension point of a run, on the run's
// goroutine and before the step delay. The view must not be retained or
// read after Observe returns.
type Observer[T any] interface {
	Observe(step vis.Step, view vis.View[T])
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc[T any] func(step vis.Step, view vis.View[T])

// Observe calls f.
func (f ObserverFunc[T]) Observe(step vis.Step, view vis.View[T]) {
	f(step, view)
}

// Observers fans a step out to several observers in order. Nil entries are
// skipped.
type Observers[T any] []Observer[T]

// Observe notifies every observer.
func (o Observers[T]) Observe(step vis.Step, view vis.View[T]) {
	for _, observer := range o {
		if observer != nil {
			observer.Observe(step, view)
		}
	}
}
