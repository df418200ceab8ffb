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

import (
	"sync/atomic"
	"time"
)

const (
	// MinSpeed and MaxSpeed bound the speed scale of SetSpeed.
	MinSpeed = 0
	MaxSpeed = 100
)

// Delay is the step delay shared between a host and its runs. Runs read it
// at every suspension point, so a change applies to a run in progress at
// its next step. A nil *Delay means no delay.
type Delay struct {
	d atomic.Int64
}

// NewDelay returns a Delay set to d.
func NewDelay(d time.Duration) *Delay {
	delay := &Delay{}
	delay.Set(d)
	return delay
}

// Get returns the current step delay.
func (d *Delay) Get() time.Duration {
	if d == nil {
		return 0
	}
	return time.Duration(d.d.Load())
}

// Set changes the step delay. Negative durations are treated as zero.
func (d *Delay) Set(v time.Duration) {
	d.d.Store(int64(max(v, 0)))
}

// SetSpeed sets the delay from a speed in [MinSpeed, MaxSpeed].
func (d *Delay) SetSpeed(speed int) {
	d.Set(SpeedDelay(speed))
}

// SpeedDelay maps a speed in [MinSpeed, MaxSpeed] to max(1, 101-speed)
// milliseconds. Out-of-range speeds are clamped.
func SpeedDelay(speed int) time.Duration {
	speed = min(max(speed, MinSpeed), MaxSpeed)
	return time.Duration(max(1, 101-speed)) * time.Millisecond
}
