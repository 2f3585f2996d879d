package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/llxisdsh/cmpcount"
)

type benchCmd struct {
	N        int `short:"n" default:"100000" env:"CMPCOUNT_N" help:"Number of random values to sort"`
	Rounds   int `default:"5" help:"Sorts per backend"`
	Parallel int `default:"1" help:"Goroutines sorting at once; above 1 only the atomic and local backends run"`
}

// backend sorts with one counter backend.
type backend struct {
	name string
	// concurrent is true for counters safe to drive from several goroutines.
	concurrent bool
	// local counters are read on the goroutine that counted.
	local bool
	sort  func(vals []uint64) time.Duration
	count func() uint64
}

var backends = []backend{
	{"baseline", true, false, sortBaseline, nil},
	{"unsync", false, false, sortWith[cmpcount.Unsync], cmpcount.Count[cmpcount.Unsync]},
	{"toggleable", false, false, sortWith[cmpcount.Toggleable], cmpcount.Count[cmpcount.Toggleable]},
	{"local", true, true, sortWith[cmpcount.Local], cmpcount.Count[cmpcount.Local]},
	{"atomic", true, false, sortWith[cmpcount.Atomic], cmpcount.Count[cmpcount.Atomic]},
}

func sortBaseline(vals []uint64) time.Duration {
	v := slices.Clone(vals)
	start := time.Now()
	slices.Sort(v)
	return time.Since(start)
}

func sortWith[B cmpcount.Backend](vals []uint64) time.Duration {
	v := cmpcount.WrapAll[B](vals)
	start := time.Now()
	cmpcount.Sort(v)
	return time.Since(start)
}

func (c *benchCmd) Run(log *slog.Logger, r *rand.Rand) error {
	vals := cmpcount.RandomInput(c.N, r)
	log.Info("Benchmarking sorts", "n", c.N, "rounds", c.Rounds, "parallel", c.Parallel)

	var base summary
	for _, b := range backends {
		if c.Parallel > 1 && !b.concurrent {
			log.Warn("Skipping backend unsafe for concurrent use", "backend", b.name)
			continue
		}
		s, comparisons, err := c.run(b, vals)
		if err != nil {
			return err
		}
		if b.name == "baseline" {
			base = s
		}
		log.Info("Sorted",
			"backend", b.name,
			"min", s.Min,
			"mean", s.Mean,
			"stddev", s.Stddev,
			"relative", s.relative(base),
			"comparisons", comparisons,
		)
	}
	return nil
}

// run sorts vals Rounds times on each of Parallel goroutines and returns the
// timing summary along with the comparisons counted per sort.
func (c *benchCmd) run(b backend, vals []uint64) (summary, uint64, error) {
	workers := max(c.Parallel, 1)
	rounds := max(c.Rounds, 1)
	samples := make([]time.Duration, workers*rounds)

	var total atomic.Uint64
	var before uint64
	if b.count != nil && !b.local {
		before = b.count()
	}

	g, ctx := errgroup.WithContext(context.Background())
	for w := range workers {
		g.Go(func() error {
			var start uint64
			if b.local {
				defer cmpcount.Local{}.Forget()
				start = b.count()
			}
			for i := range rounds {
				if err := ctx.Err(); err != nil {
					return err
				}
				samples[w*rounds+i] = b.sort(vals)
			}
			if b.local {
				total.Add(b.count() - start)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return summary{}, 0, err
	}
	if b.count != nil && !b.local {
		total.Store(b.count() - before)
	}
	return summarize(samples), total.Load() / uint64(workers*rounds), nil
}
