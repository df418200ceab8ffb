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

package main

import (
	"cmp"
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ajroetker/go-sortvis/vis"
	"github.com/ajroetker/go-sortvis/vis/contrib/metrics"
	"github.com/ajroetker/go-sortvis/vis/contrib/race"
	"github.com/ajroetker/go-sortvis/vis/contrib/run"
	"github.com/ajroetker/go-sortvis/vis/contrib/sort"
	"github.com/ajroetker/go-sortvis/vis/contrib/term"
	"github.com/ajroetker/go-sortvis/vis/contrib/workerpool"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// plainPrintLimit is the largest sequence printed by a plain run.
const plainPrintLimit = 64

var (
	keyColor    = color.New(color.FgCyan).SprintFunc()
	headerColor = color.New(color.Bold).SprintFunc()
	okColor     = color.New(color.FgGreen).SprintFunc()
	warnColor   = color.New(color.FgYellow).SprintFunc()
	errColor    = color.New(color.FgRed).Add(color.Bold).SprintFunc()
)

func (s *session) list(_ *cli.Context) error {
	for _, algo := range sort.Catalogue() {
		notes := ""
		if algo.Stable {
			notes += okColor(" stable")
		}
		if algo.Check != nil {
			notes += warnColor(" non-negative input only")
		}
		fmt.Printf("%-22s %s%s\n", keyColor(algo.Key), algo.Name, notes)
	}
	return nil
}

func (s *session) run(c *cli.Context) error {
	cfg := s.cfg.Run
	if c.IsSet(algorithm.Name) {
		cfg.Algorithm = c.String(algorithm.Name)
	}
	if c.IsSet(size.Name) {
		cfg.Size = c.Int(size.Name)
	}
	if c.IsSet(input.Name) {
		cfg.Input = c.String(input.Name)
	}
	if c.IsSet(speed.Name) {
		cfg.Speed = c.Int(speed.Name)
	}
	if c.IsSet(seed.Name) {
		cfg.Seed = c.Int64(seed.Name)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	dist, err := vis.ParseDistribution(cfg.Input)
	if err != nil {
		return err
	}
	cfg.Seed = pickSeed(cfg.Seed)

	ctx, stop := signalContext()
	defer stop()

	recorder, err := s.serveMetrics(ctx, c)
	if err != nil {
		return err
	}

	if c.Bool(plain.Name) {
		return runPlain(ctx, cfg.Algorithm, cfg.Size, dist, cfg.Speed, cfg.Seed, recorder)
	}

	shell, err := term.NewShell(term.ArgsShell{
		Algorithm: cfg.Algorithm,
		Size:      cfg.Size,
		Input:     dist,
		Speed:     cfg.Speed,
		Seed:      cfg.Seed,
		Recorder:  recorder,
	})
	if err != nil {
		return err
	}
	return shell.Run(ctx)
}

func runPlain(
	ctx context.Context,
	key string,
	n int,
	dist vis.Distribution,
	speed int,
	seed int64,
	recorder *metrics.Recorder,
) error {
	algo, ok := sort.Lookup(key)
	if !ok {
		return errors.Errorf("unknown algorithm %q", key)
	}
	seq, err := vis.Generate(n, dist, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	if n <= plainPrintLimit {
		fmt.Println("input: ", seq)
	}

	args := run.ArgsRun[int]{
		Sequence:  seq,
		Algorithm: algo,
		Compare:   cmp.Compare[int],
		Delay:     run.NewDelay(run.SpeedDelay(speed)),
	}
	if recorder != nil {
		args.Observer = metrics.StepObserver[int](recorder, algo.Key)
		args.OnFinish = recorder.RecordResult
	}

	res, err := run.Execute(ctx, args)
	if err != nil {
		return err
	}
	if n <= plainPrintLimit {
		fmt.Println("output:", seq)
	}

	outcome := okColor("completed")
	if !res.Completed {
		outcome = warnColor("stopped")
	}
	fmt.Printf("%s [%s] n=%d seed=%d: %s comparisons, %s array accesses in %s\n",
		algo.Name, outcome, n, seed,
		humanize.Comma(int64(res.Counters.Comparisons)),
		humanize.Comma(int64(res.Counters.Accesses)),
		res.Elapsed.Round(time.Millisecond),
	)
	return nil
}

func (s *session) race(c *cli.Context) error {
	cfg := s.cfg.Race
	if c.IsSet(size.Name) {
		cfg.Size = c.Int(size.Name)
	}
	if c.IsSet(input.Name) {
		cfg.Input = c.String(input.Name)
	}
	if c.IsSet(workers.Name) {
		cfg.Workers = c.Int(workers.Name)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	dist, err := vis.ParseDistribution(cfg.Input)
	if err != nil {
		return err
	}
	raceSeed := pickSeed(c.Int64(seed.Name))

	seq, err := vis.Generate(cfg.Size, dist, rand.New(rand.NewSource(raceSeed)))
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	recorder, err := s.serveMetrics(ctx, c)
	if err != nil {
		return err
	}

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	args := race.ArgsRace{Input: seq, Pool: pool}
	if recorder != nil {
		args.Observer = func(key string) run.Observer[int] {
			return metrics.StepObserver[int](recorder, key)
		}
		args.OnResult = func(e race.Entry) {
			if e.Err == nil {
				recorder.RecordResult(e.Result)
			}
		}
	}

	entries, err := race.Race(ctx, args)
	if err != nil {
		return err
	}

	fmt.Printf("race: %d algorithms, n=%d, %s input, seed=%d, %d workers\n",
		len(entries), cfg.Size, dist, raceSeed, pool.NumWorkers())
	fmt.Println(headerColor(fmt.Sprintf("%-4s %-22s %14s %16s %10s  %s",
		"#", "ALGORITHM", "COMPARISONS", "ARRAY ACCESSES", "TIME", "RESULT")))
	for i, e := range entries {
		fmt.Printf("%-4d %-22s %14s %16s %10s  %s\n",
			i+1,
			e.Name,
			humanize.Comma(int64(e.Result.Counters.Comparisons)),
			humanize.Comma(int64(e.Result.Counters.Accesses)),
			e.Result.Elapsed.Round(time.Microsecond),
			entryOutcome(e),
		)
	}
	return nil
}

func entryOutcome(e race.Entry) string {
	switch {
	case e.Err != nil:
		return errColor(e.Err.Error())
	case !e.Result.Completed:
		return warnColor("stopped")
	case !e.Sorted:
		return errColor("not sorted")
	default:
		return okColor("sorted")
	}
}

// serveMetrics starts the metrics endpoint when asked for, and returns a
// nil recorder otherwise. The server lives until ctx is done.
func (s *session) serveMetrics(ctx context.Context, c *cli.Context) (*metrics.Recorder, error) {
	addr := s.cfg.Metrics.Address
	enabled := s.cfg.Metrics.Enabled
	if c.IsSet(metricsAddr.Name) {
		addr = c.String(metricsAddr.Name)
		enabled = true
	}
	if !enabled {
		return nil, nil
	}

	reg := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(reg)
	if err != nil {
		return nil, errors.Wrap(err, "registering metrics")
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Info("serving metrics", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server stopped", "error", err)
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	return recorder, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func pickSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
