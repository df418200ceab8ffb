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

package race

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/ajroetker/go-sortvis/vis"
	"github.com/ajroetker/go-sortvis/vis/contrib/run"
	"github.com/ajroetker/go-sortvis/vis/contrib/sort"
	"github.com/ajroetker/go-sortvis/vis/contrib/workerpool"
	"github.com/pkg/errors"
)

// ArgsRace holds the arguments of Race.
type ArgsRace struct {
	Input []int
	// Algorithms defaults to the whole catalogue.
	Algorithms []vis.Algorithm[int]
	Pool       *workerpool.Pool
	// Delay may be nil to race at full speed.
	Delay *run.Delay
	// Observer, if set, returns the observer for the run of the given
	// algorithm key. It may return nil.
	Observer func(key string) run.Observer[int]
	// OnResult, if set, is called as each run finishes, from the pool's
	// goroutines.
	OnResult func(Entry)
}

// Entry is the outcome of one algorithm in a race.
type Entry struct {
	Key    string
	Name   string
	Result run.Result
	// Sorted reports whether the output is in ascending order.
	Sorted bool
	// Output is the algorithm's copy of the input after the run.
	Output []int
	// Err is set when the run could not start, or was never started
	// because the race was cancelled.
	Err error
}

// Operations is the total of comparisons and accesses.
func (e Entry) Operations() uint64 {
	return e.Result.Counters.Comparisons + e.Result.Counters.Accesses
}

// Race runs every algorithm over its own copy of args.Input on the pool
// and returns the entries ranked by Rank. Cancelling ctx stops the runs in
// flight and skips the ones not yet started; their entries are returned
// with Completed false or Err set.
func Race(ctx context.Context, args ArgsRace) ([]Entry, error) {
	algorithms := args.Algorithms
	if algorithms == nil {
		algorithms = sort.Catalogue()
	}
	if len(algorithms) == 0 {
		return nil, ErrNoAlgorithms
	}
	if args.Pool == nil {
		return nil, ErrNilPool
	}

	entries := make([]Entry, len(algorithms))
	for i, algo := range algorithms {
		entries[i] = Entry{Key: algo.Key, Name: algo.Name, Err: context.Canceled}
	}

	log.Debug("race started", "algorithms", len(algorithms), "size", len(args.Input))
	start := time.Now()

	started := args.Pool.ForEach(ctx, len(algorithms), func(i int) {
		entries[i] = runOne(ctx, args, algorithms[i])
		if args.OnResult != nil {
			args.OnResult(entries[i])
		}
	})

	if err := ctx.Err(); err != nil {
		for i := range entries {
			if entries[i].Err == context.Canceled {
				entries[i].Err = err
			}
		}
	}

	log.Debug("race finished",
		"started", started,
		"algorithms", len(algorithms),
		"elapsed", time.Since(start),
	)

	Rank(entries)
	return entries, nil
}

func runOne(ctx context.Context, args ArgsRace, algo vis.Algorithm[int]) Entry {
	entry := Entry{Key: algo.Key, Name: algo.Name, Output: slices.Clone(args.Input)}

	var observer run.Observer[int]
	if args.Observer != nil {
		observer = args.Observer(algo.Key)
	}

	res, err := run.Execute(ctx, run.ArgsRun[int]{
		Sequence:  entry.Output,
		Algorithm: algo,
		Compare:   cmp.Compare[int],
		Delay:     args.Delay,
		Observer:  observer,
	})
	if err != nil {
		entry.Err = errors.Wrapf(err, "racing %s", algo.Key)
		log.Debug("race entry rejected", "algorithm", algo.Key, "error", err)
		return entry
	}

	entry.Result = res
	entry.Sorted = slices.IsSorted(entry.Output)
	return entry
}

// Rank orders entries in place: completed runs first, by fewest operations,
// then fewest comparisons, then key; stopped runs next; entries with an
// error last.
func Rank(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(tier(a), tier(b)); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Operations(), b.Operations()); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Result.Counters.Comparisons, b.Result.Counters.Comparisons); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
}

func tier(e Entry) int {
	switch {
	case e.Err != nil:
		return 2
	case !e.Result.Completed:
		return 1
	default:
		return 0
	}
}
