//go:build race

package cmpcount

import "sync"

// cellMap maps goroutine ids to their counter cells.
// pb.MapOf reads bucket metadata with plain loads on TSO machines, which
// the race detector reports; race builds use sync.Map instead.
type cellMap struct {
	m sync.Map
}

func (c *cellMap) load(id int64) (*localCell, bool) {
	v, ok := c.m.Load(id)
	if !ok {
		return nil, false
	}
	return v.(*localCell), true
}

func (c *cellMap) loadOrStore(id int64, cell *localCell) (*localCell, bool) {
	v, loaded := c.m.LoadOrStore(id, cell)
	return v.(*localCell), loaded
}

func (c *cellMap) delete(id int64) {
	c.m.Delete(id)
}
