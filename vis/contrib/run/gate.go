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

import "sync"

// gate blocks a run at its suspension points while it is paused.
type gate struct {
	mu     sync.Mutex
	paused bool
	steps  int
	// wake is closed and replaced whenever a waiter may proceed.
	wake chan struct{}
}

func newGate() *gate {
	return &gate{wake: make(chan struct{})}
}

// wait returns immediately unless paused. While paused it consumes one
// pending step if there is one, otherwise it blocks until Resume, Step or
// stop.
func (g *gate) wait(stop <-chan struct{}) {
	for {
		g.mu.Lock()
		if !g.paused {
			g.mu.Unlock()
			return
		}
		if g.steps > 0 {
			g.steps--
			g.mu.Unlock()
			return
		}
		wake := g.wake
		g.mu.Unlock()

		select {
		case <-wake:
		case <-stop:
			return
		}
	}
}

func (g *gate) pause() {
	g.mu.Lock()
	g.paused = true
	g.mu.Unlock()
}

func (g *gate) resume() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.paused = false
	g.steps = 0
	g.broadcastLocked()
}

// step lets a paused run pass one suspension point. It has no effect on a
// running one.
func (g *gate) step() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.paused {
		return
	}
	g.steps++
	g.broadcastLocked()
}

func (g *gate) isPaused() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.paused
}

func (g *gate) broadcastLocked() {
	close(g.wake)
	g.wake = make(chan struct{})
}
