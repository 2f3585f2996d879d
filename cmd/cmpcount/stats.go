package main

import (
	"math"
	"slices"
	"time"
)

// summary describes the wall time of repeated sorts.
type summary struct {
	Min    time.Duration
	Mean   time.Duration
	Max    time.Duration
	Stddev time.Duration
}

func summarize(samples []time.Duration) summary {
	if len(samples) == 0 {
		return summary{}
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}
	mean := sum / time.Duration(len(sorted))

	var variance float64
	for _, d := range sorted {
		diff := float64(d - mean)
		variance += diff * diff
	}

	return summary{
		Min:    sorted[0],
		Mean:   mean,
		Max:    sorted[len(sorted)-1],
		Stddev: time.Duration(math.Sqrt(variance / float64(len(sorted)))),
	}
}

// relative reports how many times slower s is than base, by mean.
func (s summary) relative(base summary) float64 {
	if base.Mean == 0 {
		return 0
	}
	return float64(s.Mean) / float64(base.Mean)
}
