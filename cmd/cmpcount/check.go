package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/llxisdsh/cmpcount"
)

type checkCmd struct {
	N       int `short:"n" default:"10000" env:"CMPCOUNT_N" help:"Number of random values to sort"`
	Workers int `default:"0" help:"Goroutines for the concurrent check; 0 uses GOMAXPROCS"`
}

func (c *checkCmd) Run(log *slog.Logger, r *rand.Rand) error {
	vals := cmpcount.RandomInput(c.N, r)

	start := time.Now()
	rep, err := cmpcount.CheckEquivalence(vals)
	if err != nil {
		log.Error("Backends disagree", "report", rep.String())
		return err
	}
	log.Info("Backends agree",
		"n", rep.N,
		"comparisons", rep.Unsync,
		"elapsed", since(start),
	)

	if err := cmpcount.CheckSuppression(vals); err != nil {
		return err
	}
	log.Info("Toggle guard suppressed and resumed counting", "counter", cmpcount.Count[cmpcount.Toggleable]())

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	rep, err = cmpcount.CheckConcurrent(context.Background(), vals, workers)
	if err != nil {
		return err
	}
	log.Info("Concurrent atomic total matches goroutine-local counts",
		"workers", workers,
		"comparisons", rep.Atomic,
	)
	return nil
}
