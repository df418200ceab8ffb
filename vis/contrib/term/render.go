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

package term

import (
	"fmt"
	"strings"
	"time"

	"github.com/ajroetker/go-sortvis/vis"
	"github.com/dustin/go-humanize"
	ui "github.com/gizak/termui/v3"
)

// State is what the shell is doing.
type State uint8

const (
	Idle State = iota
	Running
	Paused
	Stopped
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Frame is a copy of the sequence and its marks at one instant.
type Frame struct {
	Values   []int
	Marks    []vis.Mark
	Counters vis.Counters
}

// FrameFromView copies view into a Frame. It must be called from inside
// Observe.
func FrameFromView(view vis.View[int]) Frame {
	n := view.Len()
	f := Frame{
		Values:   make([]int, n),
		Marks:    make([]vis.Mark, n),
		Counters: view.Counters(),
	}
	for i := 0; i < n; i++ {
		f.Values[i] = view.At(i)
		f.Marks[i] = view.MarkAt(i)
	}
	return f
}

// FrameFromValues builds an unmarked frame.
func FrameFromValues(values []int, counters vis.Counters) Frame {
	return Frame{
		Values:   values,
		Marks:    make([]vis.Mark, len(values)),
		Counters: counters,
	}
}

// sweep marks the first k bars of f as sorted, for the completion flourish.
func sweep(f Frame, k int) Frame {
	k = min(k, len(f.Marks))
	for i := 0; i < k; i++ {
		f.Marks[i] = vis.MarkSorted
	}
	return f
}

var markColors = map[vis.Mark]ui.Color{
	vis.MarkNormal:    ui.ColorWhite,
	vis.MarkComparing: ui.ColorYellow,
	vis.MarkSwapping:  ui.ColorRed,
	vis.MarkPivot:     ui.ColorMagenta,
	vis.MarkWorking:   ui.ColorCyan,
	vis.MarkSorted:    ui.ColorGreen,
}

func barColor(m vis.Mark) ui.Color {
	if c, ok := markColors[m]; ok {
		return c
	}
	return ui.ColorWhite
}

// bars converts a frame into bar chart data and per-bar colours.
func bars(f Frame) ([]float64, []ui.Color) {
	data := make([]float64, len(f.Values))
	colors := make([]ui.Color, len(f.Values))
	for i, v := range f.Values {
		data[i] = float64(v)
		colors[i] = barColor(f.Marks[i])
	}
	return data, colors
}

// barLayout fits n bars into width cells, preferring a one-cell gap.
func barLayout(n, width int) (barWidth, gap int) {
	if n <= 0 {
		return 1, 0
	}
	inner := max(width-2, 1)
	if inner >= 2*n {
		gap = 1
	}
	barWidth = max((inner-gap*n)/n, 1)
	return barWidth, gap
}

// Status is the text of the status line.
type Status struct {
	Algorithm string
	State     State
	Counters  vis.Counters
	Delay     time.Duration
	Input     vis.Distribution
	Size      int
}

func (s Status) String() string {
	return fmt.Sprintf("%s [%s] | comparisons: %s | array accesses: %s | delay: %s | %s n=%d",
		s.Algorithm,
		s.State,
		humanize.Comma(int64(s.Counters.Comparisons)),
		humanize.Comma(int64(s.Counters.Accesses)),
		s.Delay,
		s.Input,
		s.Size,
	)
}

var keyHelp = strings.Join([]string{
	"space run/stop",
	"p pause",
	"n step",
	"r reset",
	"←/→ algorithm",
	"↑/↓ size",
	"i input",
	"+/- speed",
	"q quit",
}, "  ")
