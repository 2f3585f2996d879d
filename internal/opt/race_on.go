//go:build race

package opt

// Race_ reports whether the binary was built with the race detector.
// Unsynchronized counters are reported as races under -race, so callers
// use it to keep concurrent stress on those counters out of race builds.
const Race_ = true
