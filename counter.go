// Package cmpcount counts the ordering comparisons made against wrapped scalars.
package cmpcount

import (
	"sync/atomic"

	"github.com/llxisdsh/cmpcount/internal/opt"
)

// Counter is the storage behind a comparison backend.
//
// Inc records one completed comparison; Load reports the number recorded
// so far as visible to the caller. The zero value of every implementation
// in this package is an empty counter ready for use.
type Counter interface {
	Inc()
	Load() uint64
}

var (
	_ Counter = (*UnsyncCounter)(nil)
	_ Counter = (*AtomicCounter)(nil)
	_ Counter = (*LocalCounter)(nil)
	_ Counter = (*ToggleCounter)(nil)
)

// UnsyncCounter is a plain integer mutated without synchronization.
//
// It is correct only when every Inc and Load happens on a single goroutine
// (or is otherwise ordered by the caller). Concurrent Inc calls are a data
// race; the race is not masked and will be reported by -race.
// It serves as the baseline cost of counting with no synchronization.
type UnsyncCounter struct {
	_ noCopy
	n uint64
}

// Inc adds one to the counter.
func (c *UnsyncCounter) Inc() {
	c.n++
}

// Load returns the current value.
func (c *UnsyncCounter) Load() uint64 {
	return c.n
}

// AtomicCounter is an integer mutated through atomic read-modify-write.
//
// Go atomics are sequentially consistent, so all goroutines observe a single
// coherent total regardless of concurrent Inc activity.
// On architectures where padding is enabled the counter occupies its own
// cache line so it does not false-share with neighbouring globals.
type AtomicCounter struct {
	_ noCopy
	_ [counterPad * opt.PaddingMult_]byte
	n atomic.Uint64
}

// Inc atomically adds one to the counter.
func (c *AtomicCounter) Inc() {
	c.n.Add(1)
}

// Load atomically reads the counter.
func (c *AtomicCounter) Load() uint64 {
	return c.n.Load()
}
