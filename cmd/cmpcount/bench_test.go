package main

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/llxisdsh/cmpcount"
)

func TestBenchRun_BackendsAgree(t *testing.T) {
	vals := cmpcount.RandomInput(500, rand.New(rand.NewPCG(7, 8)))
	c := benchCmd{N: len(vals), Rounds: 3, Parallel: 1}

	var want uint64
	for _, b := range backends {
		s, n, err := c.run(b, vals)
		if err != nil {
			t.Fatal(err)
		}
		if s.Min > s.Max || s.Mean > s.Max {
			t.Fatalf("%s: bad summary %+v", b.name, s)
		}
		if b.count == nil {
			if n != 0 {
				t.Fatalf("baseline counted %d", n)
			}
			continue
		}
		if want == 0 {
			want = n
		}
		if n != want || n == 0 {
			t.Fatalf("%s counted %d per sort, want %d", b.name, n, want)
		}
	}
}

func TestBenchRun_Parallel(t *testing.T) {
	vals := cmpcount.RandomInput(500, rand.New(rand.NewPCG(9, 10)))
	seq := benchCmd{N: len(vals), Rounds: 1, Parallel: 1}
	par := benchCmd{N: len(vals), Rounds: 2, Parallel: 4}

	for _, b := range backends {
		if !b.concurrent || b.count == nil {
			continue
		}
		_, want, err := seq.run(b, vals)
		if err != nil {
			t.Fatal(err)
		}
		_, got, err := par.run(b, vals)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("%s: parallel counted %d per sort, want %d", b.name, got, want)
		}
	}
}

func TestBenchCmd_Run(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := benchCmd{N: 200, Rounds: 1, Parallel: 2}
	if err := c.Run(log, rand.New(rand.NewPCG(1, 1))); err != nil {
		t.Fatal(err)
	}
}

func TestCheckCmd_Run(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := checkCmd{N: 1000, Workers: 2}
	if err := c.Run(log, rand.New(rand.NewPCG(2, 2))); err != nil {
		t.Fatal(err)
	}
}

func TestNewLogger(t *testing.T) {
	if !newLogger("debug", true).Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("debug level not enabled")
	}
	if newLogger("bogus", true).Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("unknown level should fall back to info")
	}
}
