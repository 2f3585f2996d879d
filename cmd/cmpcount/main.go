package main

import (
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
)

var cli struct {
	LogLevel string `default:"info" enum:"debug,info,warn,error" env:"CMPCOUNT_LOG_LEVEL" help:"Log level (debug,info,warn,error)"`
	NoColor  bool   `env:"NO_COLOR" help:"Disable colored log output"`
	Seed     uint64 `env:"CMPCOUNT_SEED" help:"Seed for the random input; 0 picks one at random"`

	Check checkCmd `cmd:"" help:"Verify all counter backends agree and the toggle guard suppresses counting"`
	Bench benchCmd `cmd:"" help:"Time sorts of random input under each counter backend"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("cmpcount"),
		kong.Description("Comparison-counting sort harness"),
		kong.UsageOnError(),
	)

	log := newLogger(cli.LogLevel, cli.NoColor)
	ctx.FatalIfErrorf(ctx.Run(log, newRand(cli.Seed, log)))
}

func newLogger(level string, noColor bool) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      lvl,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}))
}

func newRand(seed uint64, log *slog.Logger) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Debug("Input seed", "seed", seed)
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func since(start time.Time) time.Duration {
	return time.Since(start).Round(time.Microsecond)
}
