package cmpcount

import "github.com/petermattis/goid"

// LocalCounter keeps one private count per goroutine.
//
// Go has no thread-local storage; the goroutine is the unit of private
// execution, so each goroutine gets its own cell keyed by goroutine id.
// A cell is created, zeroed, on the first Inc from that goroutine and is
// only ever read or written by it, so no synchronization is needed on the
// count itself. Load reflects only the comparisons performed on the calling
// goroutine. There is no operation that sums cells across goroutines; a
// caller wanting a total must collect each goroutine's Load itself.
//
// Cells outlive their goroutines. Call Forget from a goroutine that is done
// counting to drop its cell.
type LocalCounter struct {
	_     noCopy
	cells cellMap
}

type localCell struct {
	n uint64
}

// Inc adds one to the calling goroutine's count.
func (c *LocalCounter) Inc() {
	c.cell().n++
}

// Load returns the calling goroutine's count, or 0 if it never counted.
func (c *LocalCounter) Load() uint64 {
	if cell, ok := c.cells.load(goid.Get()); ok {
		return cell.n
	}
	return 0
}

// Forget drops the calling goroutine's cell. A later Inc starts from zero.
func (c *LocalCounter) Forget() {
	c.cells.delete(goid.Get())
}

func (c *LocalCounter) cell() *localCell {
	id := goid.Get()
	if cell, ok := c.cells.load(id); ok {
		return cell
	}
	cell, _ := c.cells.loadOrStore(id, &localCell{})
	return cell
}
