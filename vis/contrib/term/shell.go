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
	"cmp"
	"context"
	"math/rand"
	"os"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ajroetker/go-sortvis/vis"
	"github.com/ajroetker/go-sortvis/vis/contrib/metrics"
	"github.com/ajroetker/go-sortvis/vis/contrib/run"
	"github.com/ajroetker/go-sortvis/vis/contrib/sort"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/pkg/errors"
)

const (
	speedStep         = 10
	flourishInterval  = 15 * time.Millisecond
	flourishSweepRate = 40
)

// sizeSteps are the sizes offered by the up and down keys.
var sizeSteps = []int{8, 16, 32, 50, 64, 100, 128, 200}

// ArgsShell holds the arguments of NewShell.
type ArgsShell struct {
	// Algorithms defaults to the whole catalogue.
	Algorithms []vis.Algorithm[int]
	// Algorithm is the key selected at start.
	Algorithm string
	Size      int
	Input     vis.Distribution
	Speed     int
	Seed      int64
	// Recorder, if set, is fed every step and every finished run.
	Recorder *metrics.Recorder
}

type finishedRun struct {
	run    *run.Run[int]
	result run.Result
}

// Shell is the interactive terminal front end.
type Shell struct {
	algorithms []vis.Algorithm[int]
	algoIdx    int
	size       int
	input      vis.Distribution
	speed      int
	rng        *rand.Rand
	recorder   *metrics.Recorder

	delay  *run.Delay
	ctrl   *run.Controller[int]
	active *run.Run[int]
	state  State
	// key is the algorithm of the run feeding the observer.
	key atomic.Value

	frames   chan Frame
	finished chan finishedRun
	last     Frame
	message  string

	sweepPos    int
	sweepTicker *time.Ticker

	grid   *ui.Grid
	chart  *widgets.BarChart
	status *widgets.Paragraph
	width  int
}

// NewShell validates args and generates the first sequence. The terminal
// is not touched until Run.
func NewShell(args ArgsShell) (*Shell, error) {
	algorithms := args.Algorithms
	if algorithms == nil {
		algorithms = sort.Catalogue()
	}
	if args.Size < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "size %d", args.Size)
	}

	algoIdx := slices.IndexFunc(algorithms, func(a vis.Algorithm[int]) bool {
		return strings.EqualFold(a.Key, args.Algorithm)
	})
	if algoIdx < 0 {
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q", args.Algorithm)
	}

	s := &Shell{
		algorithms: algorithms,
		algoIdx:    algoIdx,
		size:       args.Size,
		input:      args.Input,
		speed:      min(max(args.Speed, run.MinSpeed), run.MaxSpeed),
		rng:        rand.New(rand.NewSource(args.Seed)),
		recorder:   args.Recorder,
		frames:     make(chan Frame, 1),
		finished:   make(chan finishedRun),
	}
	s.delay = run.NewDelay(run.SpeedDelay(s.speed))
	s.key.Store(algorithms[algoIdx].Key)

	var onFinish func(run.Result)
	if s.recorder != nil {
		onFinish = s.recorder.RecordResult
	}

	seq, err := vis.Generate(s.size, s.input, s.rng)
	if err != nil {
		return nil, err
	}
	s.ctrl, err = run.NewController(run.ArgsController[int]{
		Sequence: seq,
		Compare:  cmp.Compare[int],
		Delay:    s.delay,
		Observer: run.ObserverFunc[int](s.observe),
		OnFinish: onFinish,
	})
	if err != nil {
		return nil, err
	}
	s.last = FrameFromValues(slices.Clone(seq), vis.Counters{})

	return s, nil
}

// Run takes over the terminal until the user quits or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	if err := ui.Init(); err != nil {
		return errors.Wrap(err, "initializing terminal")
	}
	defer ui.Close()

	if err := logger.RemoveLogObserver(os.Stdout); err != nil {
		log.Debug("stdout log observer not removed", "error", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.ctrl.Stop()
	defer s.stopSweep()

	s.initWidgets()
	s.layout(ui.TerminalDimensions())
	s.render()

	events := ui.PollEvents()
	for {
		var sweepC <-chan time.Time
		if s.sweepTicker != nil {
			sweepC = s.sweepTicker.C
		}

		select {
		case <-ctx.Done():
			return nil
		case e := <-events:
			if !s.handle(ctx, e) {
				return nil
			}
		case f := <-s.frames:
			s.last = f
		case fin := <-s.finished:
			s.onFinished(fin)
		case <-sweepC:
			s.advanceSweep()
		}
		s.render()
	}
}

func (s *Shell) initWidgets() {
	s.chart = widgets.NewBarChart()
	s.chart.NumFormatter = func(float64) string { return "" }
	s.chart.BarGap = 0

	s.status = widgets.NewParagraph()
	s.status.Title = "sortvis"

	s.grid = ui.NewGrid()
	s.grid.Set(
		ui.NewRow(0.85, s.chart),
		ui.NewRow(0.15, s.status),
	)
}

func (s *Shell) layout(width, height int) {
	s.width = width
	s.grid.SetRect(0, 0, width, height)
}

// handle applies one terminal event. It returns false to quit.
func (s *Shell) handle(ctx context.Context, e ui.Event) bool {
	s.message = ""

	switch e.ID {
	case "q", "<C-c>":
		return false
	case "<Space>":
		if s.running() {
			s.ctrl.Stop()
		} else {
			s.start(ctx)
		}
	case "p":
		s.togglePause()
	case "n":
		if s.state == Paused {
			s.active.Step()
		}
	case "r":
		s.reset()
	case "<Left>":
		s.selectAlgorithm(-1)
	case "<Right>":
		s.selectAlgorithm(1)
	case "<Up>":
		s.resize(1)
	case "<Down>":
		s.resize(-1)
	case "i":
		s.input = nextDistribution(s.input)
		s.reset()
	case "+", "=":
		s.changeSpeed(speedStep)
	case "-":
		s.changeSpeed(-speedStep)
	case "<Resize>":
		if payload, ok := e.Payload.(ui.Resize); ok {
			s.layout(payload.Width, payload.Height)
			ui.Clear()
		}
	}
	return true
}

func (s *Shell) running() bool {
	return s.active != nil && s.active.Running()
}

func (s *Shell) start(ctx context.Context) {
	s.stopSweep()
	s.ctrl.Stop()

	algo := s.algorithms[s.algoIdx]
	s.key.Store(algo.Key)

	r, err := s.ctrl.Start(ctx, algo)
	if err != nil {
		log.Debug("run not started", "algorithm", algo.Key, "error", err)
		s.message = err.Error()
		return
	}

	s.active = r
	s.state = Running
	go s.watch(ctx, r)
}

func (s *Shell) watch(ctx context.Context, r *run.Run[int]) {
	res := r.Wait()
	select {
	case s.finished <- finishedRun{run: r, result: res}:
	case <-ctx.Done():
	}
}

func (s *Shell) onFinished(fin finishedRun) {
	if fin.run != s.active {
		return
	}
	s.drainFrames()

	seq, err := s.ctrl.Snapshot()
	if err != nil {
		log.Debug("snapshot after run", "error", err)
		return
	}
	s.last = FrameFromValues(seq, fin.result.Counters)

	if fin.result.Completed {
		s.state = Done
		s.startSweep()
		return
	}
	s.state = Stopped
}

func (s *Shell) togglePause() {
	if !s.running() {
		return
	}
	if s.active.Paused() {
		s.active.Resume()
		s.state = Running
		return
	}
	s.active.Pause()
	s.state = Paused
}

// reset stops the active run and generates a fresh sequence.
func (s *Shell) reset() {
	s.stopSweep()

	seq, err := vis.Generate(s.size, s.input, s.rng)
	if err != nil {
		s.message = err.Error()
		return
	}
	s.ctrl.Reset(seq)
	s.drainFrames()

	s.active = nil
	s.state = Idle
	s.last = FrameFromValues(slices.Clone(seq), vis.Counters{})
}

func (s *Shell) selectAlgorithm(delta int) {
	n := len(s.algorithms)
	s.algoIdx = ((s.algoIdx+delta)%n + n) % n
	s.reset()
}

func (s *Shell) resize(delta int) {
	s.size = nextSize(s.size, delta)
	s.reset()
}

func (s *Shell) changeSpeed(delta int) {
	s.speed = min(max(s.speed+delta, run.MinSpeed), run.MaxSpeed)
	s.delay.SetSpeed(s.speed)
}

func (s *Shell) observe(step vis.Step, view vis.View[int]) {
	if s.recorder != nil {
		s.recorder.ObserveStep(s.key.Load().(string), step)
	}
	s.publish(FrameFromView(view))
}

// publish replaces any frame the event loop has not drawn yet.
func (s *Shell) publish(f Frame) {
	select {
	case s.frames <- f:
		return
	default:
	}
	select {
	case <-s.frames:
	default:
	}
	select {
	case s.frames <- f:
	default:
	}
}

func (s *Shell) drainFrames() {
	select {
	case <-s.frames:
	default:
	}
}

func (s *Shell) startSweep() {
	s.sweepPos = 0
	s.sweepTicker = time.NewTicker(flourishInterval)
}

func (s *Shell) advanceSweep() {
	n := len(s.last.Values)
	s.sweepPos += max(1, n/flourishSweepRate)
	s.last = sweep(s.last, s.sweepPos)
	if s.sweepPos >= n {
		s.stopSweep()
	}
}

func (s *Shell) stopSweep() {
	if s.sweepTicker == nil {
		return
	}
	s.sweepTicker.Stop()
	s.sweepTicker = nil
}

func (s *Shell) render() {
	algo := s.algorithms[s.algoIdx]

	data, colors := bars(s.last)
	s.chart.Data = data
	s.chart.BarColors = colors
	s.chart.MaxVal = chartMax(data)
	s.chart.BarWidth, s.chart.BarGap = barLayout(len(data), s.width)
	s.chart.Title = algo.Name

	status := Status{
		Algorithm: algo.Name,
		State:     s.state,
		Counters:  s.last.Counters,
		Delay:     s.delay.Get(),
		Input:     s.input,
		Size:      s.size,
	}
	lines := []string{status.String(), keyHelp}
	if s.message != "" {
		lines = append(lines, s.message)
	}
	s.status.Text = strings.Join(lines, "\n")

	ui.Render(s.grid)
}

// chartMax is the bar chart scale: the largest value, at least 1.
func chartMax(data []float64) float64 {
	m := 1.0
	for _, v := range data {
		m = max(m, v)
	}
	return m
}

// nextSize moves from size to the neighbouring step in sizeSteps.
func nextSize(size, delta int) int {
	switch {
	case delta > 0:
		for _, step := range sizeSteps {
			if step > size {
				return step
			}
		}
		return sizeSteps[len(sizeSteps)-1]
	case delta < 0:
		for i := len(sizeSteps) - 1; i >= 0; i-- {
			if sizeSteps[i] < size {
				return sizeSteps[i]
			}
		}
		return sizeSteps[0]
	default:
		return size
	}
}

func nextDistribution(d vis.Distribution) vis.Distribution {
	all := vis.Distributions()
	i := slices.Index(all, d)
	return all[(i+1)%len(all)]
}
