package cmpcount

// Process-wide counters behind the backend markers. They live for the
// duration of the process; only the toggleable one can be reset.
var (
	unsyncCounter UnsyncCounter
	atomicCounter AtomicCounter
	localCounter  LocalCounter
	toggleCounter ToggleCounter
)

// Backend selects, at the type level, which process-wide counter a
// Value drives. Implementations are zero-size markers, so choosing a
// backend adds nothing to the size of a Value.
type Backend interface {
	Unsync | Atomic | Local | Toggleable
	Counter
}

// Unsync counts into a process-wide UnsyncCounter.
// Values using it must only be compared from one goroutine at a time.
type Unsync struct{}

func (Unsync) Inc()         { unsyncCounter.Inc() }
func (Unsync) Load() uint64 { return unsyncCounter.Load() }

// Atomic counts into a process-wide AtomicCounter.
type Atomic struct{}

func (Atomic) Inc()         { atomicCounter.Inc() }
func (Atomic) Load() uint64 { return atomicCounter.Load() }

// Local counts into the calling goroutine's cell of a process-wide LocalCounter.
type Local struct{}

func (Local) Inc()         { localCounter.Inc() }
func (Local) Load() uint64 { return localCounter.Load() }

// Forget drops the calling goroutine's cell.
func (Local) Forget() { localCounter.Forget() }

// Toggleable counts into a process-wide ToggleCounter.
// Values using it must only be compared from one goroutine at a time.
type Toggleable struct{}

func (Toggleable) Inc()         { toggleCounter.Inc() }
func (Toggleable) Load() uint64 { return toggleCounter.Load() }

// Reset sets the process-wide toggleable counter to zero.
func (Toggleable) Reset() { toggleCounter.Reset() }

// Enabled reports whether the process-wide toggleable counter is counting.
func (Toggleable) Enabled() bool { return toggleCounter.Enabled() }

// Count reads the process-wide counter of backend B.
func Count[B Backend]() uint64 {
	var b B
	return b.Load()
}

// NewToggleGuard disables the process-wide toggleable counter until the
// guard is released. It panics if a guard is already outstanding.
func NewToggleGuard() *ToggleGuard {
	return toggleCounter.Disable()
}

// WithCountingDisabled runs fn with the process-wide toggleable counter
// disabled. Counting is re-enabled when fn returns or panics.
func WithCountingDisabled(fn func()) {
	g := NewToggleGuard()
	defer g.Release()
	fn()
}
