package cmpcount

// ToggleCounter is an unsynchronized counter gated by an enabled flag.
//
// Inc only counts while the flag is enabled. The flag starts enabled and is
// only flipped through a ToggleGuard: Disable turns it off, Release turns it
// back on. At most one guard may be outstanding per counter; violating that
// is a programming error and panics.
//
// Like UnsyncCounter, neither the count nor the flag is synchronized.
// It is the only counter that supports Reset.
type ToggleCounter struct {
	_   noCopy
	n   uint64
	off bool
}

// Inc adds one to the counter unless counting is disabled.
func (c *ToggleCounter) Inc() {
	if !c.off {
		c.n++
	}
}

// Load returns the current value.
func (c *ToggleCounter) Load() uint64 {
	return c.n
}

// Reset sets the counter to zero. It does not touch the enabled flag.
func (c *ToggleCounter) Reset() {
	c.n = 0
}

// Enabled reports whether Inc currently counts.
func (c *ToggleCounter) Enabled() bool {
	return !c.off
}

// Disable suspends counting until the returned guard is released.
// The usual form is
//
//	g := c.Disable()
//	defer g.Release()
//
// It panics if counting is already disabled.
func (c *ToggleCounter) Disable() *ToggleGuard {
	if c.off {
		panic("cmpcount: already toggled off")
	}
	c.off = true
	return &ToggleGuard{c: c}
}

// ToggleGuard holds a ToggleCounter in the disabled state.
type ToggleGuard struct {
	c *ToggleCounter
}

// Release re-enables counting.
// It panics if counting is already enabled, which happens when the guard
// is released twice.
func (g *ToggleGuard) Release() {
	if !g.c.off {
		panic("cmpcount: already toggled on")
	}
	g.c.off = false
}
