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

// Package metrics exports the counters of sorting runs to Prometheus.
package metrics

import (
	"net/http"

	"github.com/ajroetker/go-sortvis/vis"
	"github.com/ajroetker/go-sortvis/vis/contrib/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "sortvis"
	subsystem = "run"
)

const (
	outcomeCompleted = "completed"
	outcomeStopped   = "stopped"
)

// Recorder holds the collectors of every run it is fed.
type Recorder struct {
	Comparisons *prometheus.CounterVec
	Accesses    *prometheus.CounterVec
	Steps       *prometheus.CounterVec
	Runs        *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	comparisons := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "comparisons_total",
		Help:      "Comparisons performed by finished runs.",
	}, []string{"algorithm"})

	accesses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "accesses_total",
		Help:      "Array accesses performed by finished runs.",
	}, []string{"algorithm"})

	steps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "steps_total",
		Help:      "Suspension points reached, by operation.",
	}, []string{"algorithm", "op"})

	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "runs_total",
		Help:      "Finished runs, by outcome.",
	}, []string{"algorithm", "outcome"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "duration_seconds",
		Help:      "Wall time of finished runs, step delays included.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
	}, []string{"algorithm"})

	for _, c := range []prometheus.Collector{comparisons, accesses, steps, runs, duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return &Recorder{
		Comparisons: comparisons,
		Accesses:    accesses,
		Steps:       steps,
		Runs:        runs,
		Duration:    duration,
	}, nil
}

// RecordResult adds a finished run to the collectors. It has the shape of
// run.ArgsRun.OnFinish.
func (r *Recorder) RecordResult(res run.Result) {
	r.Comparisons.WithLabelValues(res.Algorithm).Add(float64(res.Counters.Comparisons))
	r.Accesses.WithLabelValues(res.Algorithm).Add(float64(res.Counters.Accesses))

	outcome := outcomeCompleted
	if !res.Completed {
		outcome = outcomeStopped
	}
	r.Runs.WithLabelValues(res.Algorithm, outcome).Inc()
	r.Duration.WithLabelValues(res.Algorithm).Observe(res.Elapsed.Seconds())
}

// ObserveStep counts one suspension point of algorithm.
func (r *Recorder) ObserveStep(algorithm string, step vis.Step) {
	r.Steps.WithLabelValues(algorithm, step.Op.String()).Inc()
}

// StepObserver returns a run observer that counts the steps of algorithm.
// It caches its counters and must serve one run at a time.
func StepObserver[T any](r *Recorder, algorithm string) run.Observer[T] {
	steps := map[vis.Op]prometheus.Counter{}
	return run.ObserverFunc[T](func(step vis.Step, _ vis.View[T]) {
		c, ok := steps[step.Op]
		if !ok {
			c = r.Steps.WithLabelValues(algorithm, step.Op.String())
			steps[step.Op] = c
		}
		c.Inc()
	})
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
