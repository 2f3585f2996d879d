//go:build !race

package cmpcount

import "github.com/llxisdsh/pb"

// cellMap maps goroutine ids to their counter cells.
type cellMap struct {
	m pb.MapOf[int64, *localCell]
}

func (c *cellMap) load(id int64) (*localCell, bool) {
	return c.m.Load(id)
}

func (c *cellMap) loadOrStore(id int64, cell *localCell) (*localCell, bool) {
	return c.m.LoadOrStore(id, cell)
}

func (c *cellMap) delete(id int64) {
	c.m.Delete(id)
}
