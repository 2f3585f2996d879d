package cmpcount

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrCountMismatch is returned when backends disagree on how many
	// comparisons the same sort performed.
	ErrCountMismatch = errors.New("cmpcount: comparison counts differ across backends")
	// ErrSuppressionLeak is returned when the toggleable counter moved while
	// a guard was held.
	ErrSuppressionLeak = errors.New("cmpcount: toggleable counter changed while disabled")
	// ErrNoResumption is returned when the toggleable counter did not move
	// after its guard was released.
	ErrNoResumption = errors.New("cmpcount: toggleable counter did not resume")
	// ErrInvalidWorkers is returned by CheckConcurrent for a non-positive
	// worker count.
	ErrInvalidWorkers = errors.New("cmpcount: workers must be positive")
)

// RandomInput returns n uniformly random scalars drawn from r.
// A nil r uses the global source. A non-positive n yields an empty slice.
func RandomInput(n int, r *rand.Rand) []uint64 {
	vals := make([]uint64, max(n, 0))
	for i := range vals {
		if r != nil {
			vals[i] = r.Uint64()
		} else {
			vals[i] = rand.Uint64()
		}
	}
	return vals
}

// Report holds the number of comparisons each backend counted while
// sorting one input.
type Report struct {
	N          int
	Unsync     uint64
	Atomic     uint64
	Local      uint64
	Toggleable uint64
}

// Equal reports whether all four backends counted the same number.
func (r Report) Equal() bool {
	return r.Unsync == r.Atomic &&
		r.Unsync == r.Local &&
		r.Unsync == r.Toggleable
}

func (r Report) String() string {
	return fmt.Sprintf("n=%d unsync=%d atomic=%d local=%d toggleable=%d",
		r.N, r.Unsync, r.Atomic, r.Local, r.Toggleable)
}

// sortDelta wraps vals for backend B, sorts them and returns how far B's
// counter moved. Counters are never reset here, so deltas are what is compared.
func sortDelta[B Backend](vals []uint64) uint64 {
	before := Count[B]()
	Sort(WrapAll[B](vals))
	return Count[B]() - before
}

// CheckEquivalence sorts an independent copy of vals under every backend
// and verifies they all counted the same number of comparisons.
// It must be called from a single goroutine with no toggle guard held.
func CheckEquivalence(vals []uint64) (Report, error) {
	r := Report{
		N:          len(vals),
		Unsync:     sortDelta[Unsync](vals),
		Atomic:     sortDelta[Atomic](vals),
		Local:      sortDelta[Local](vals),
		Toggleable: sortDelta[Toggleable](vals),
	}
	if !r.Equal() {
		return r, fmt.Errorf("%w: %s", ErrCountMismatch, r)
	}
	return r, nil
}

// CheckSuppression verifies the toggle guard: a sort performed while a
// guard is held leaves the toggleable counter unchanged, and a sort after
// the guard is released moves it again. The resumption check is skipped
// for fewer than two values, since such sorts make no comparisons.
func CheckSuppression(vals []uint64) error {
	vs := WrapAll[Toggleable](vals)
	before := Count[Toggleable]()
	WithCountingDisabled(func() {
		Sort(slices.Clone(vs))
	})
	if after := Count[Toggleable](); after != before {
		return fmt.Errorf("%w: before=%d after=%d", ErrSuppressionLeak, before, after)
	}
	Sort(vs)
	if len(vals) < 2 {
		return nil
	}
	if after := Count[Toggleable](); after == before {
		return fmt.Errorf("%w: counter stuck at %d", ErrNoResumption, before)
	}
	return nil
}

// CheckConcurrent sorts vals on the given number of goroutines at once,
// each counting with both the Atomic and Local backends. Each worker
// reports its own goroutine-local delta; their sum must equal the delta of
// the shared atomic counter. Nothing else may use the Atomic backend while
// it runs. A non-positive worker count returns ErrInvalidWorkers.
func CheckConcurrent(ctx context.Context, vals []uint64, workers int) (Report, error) {
	if workers <= 0 {
		return Report{}, fmt.Errorf("%w: %d", ErrInvalidWorkers, workers)
	}
	locals := make([]uint64, workers)
	before := Count[Atomic]()

	g, ctx := errgroup.WithContext(ctx)
	for i := range workers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			defer Local{}.Forget()
			start := Count[Local]()
			Sort(WrapAll[Atomic](vals))
			Sort(WrapAll[Local](vals))
			locals[i] = Count[Local]() - start
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	r := Report{N: len(vals), Atomic: Count[Atomic]() - before}
	for _, n := range locals {
		r.Local += n
	}
	if r.Atomic != r.Local {
		return r, fmt.Errorf("%w: %s", ErrCountMismatch, r)
	}
	return r, nil
}
