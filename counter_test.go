package cmpcount

import (
	"runtime"
	"sync"
	"testing"
	"unsafe"

	"github.com/llxisdsh/cmpcount/internal/opt"
)

func TestUnsyncCounter(t *testing.T) {
	var c UnsyncCounter
	if got := c.Load(); got != 0 {
		t.Fatalf("zero value Load = %d, want 0", got)
	}
	for range 100 {
		c.Inc()
	}
	if got := c.Load(); got != 100 {
		t.Fatalf("Load = %d, want 100", got)
	}
}

// Concurrent Inc on an UnsyncCounter is a data race. Lost updates can only
// make the total smaller, never larger.
func TestUnsyncCounter_ConcurrentNeverOvercounts(t *testing.T) {
	if opt.Race_ {
		t.Skip("unsynchronized counter races by construction")
	}
	var c UnsyncCounter
	const loops = 10000
	n := runtime.GOMAXPROCS(0)
	var wg sync.WaitGroup
	wg.Add(n)
	for range n {
		go func() {
			defer wg.Done()
			for range loops {
				c.Inc()
			}
		}()
	}
	wg.Wait()
	if got := c.Load(); got == 0 || got > uint64(n*loops) {
		t.Fatalf("Load = %d, want in (0, %d]", got, n*loops)
	}
}

func TestAtomicCounter_Concurrent(t *testing.T) {
	var c AtomicCounter
	const loops = 10000
	n := runtime.GOMAXPROCS(0) * 2
	var wg sync.WaitGroup
	wg.Add(n)
	for range n {
		go func() {
			defer wg.Done()
			for range loops {
				c.Inc()
			}
		}()
	}
	wg.Wait()
	if got := c.Load(); got != uint64(n*loops) {
		t.Fatalf("Load = %d, want %d", got, n*loops)
	}
}

func TestAtomicCounter_Padding(t *testing.T) {
	var c AtomicCounter
	size := unsafe.Sizeof(AtomicCounter{})
	want := counterPad*opt.PaddingMult_ + unsafe.Sizeof(uint64(0))
	if size != want {
		t.Fatalf("size = %d, want %d (padding mult %d)", size, want, opt.PaddingMult_)
	}
	if off := unsafe.Offsetof(c.n); off+unsafe.Sizeof(uint64(0)) != size {
		t.Fatalf("counter at offset %d, want it to end the struct of size %d", off, size)
	}
	if opt.PaddingMult_ == 1 && size%cacheLineSize != 0 {
		t.Fatalf("padded size = %d, not a multiple of %d", size, cacheLineSize)
	}
}

func TestBackend_Count(t *testing.T) {
	before := [...]uint64{
		Count[Unsync](), Count[Atomic](), Count[Local](), Count[Toggleable](),
	}
	Unsync{}.Inc()
	Atomic{}.Inc()
	Local{}.Inc()
	Toggleable{}.Inc()
	after := [...]uint64{
		Count[Unsync](), Count[Atomic](), Count[Local](), Count[Toggleable](),
	}
	for i := range before {
		if after[i]-before[i] != 1 {
			t.Fatalf("backend %d moved by %d, want 1", i, after[i]-before[i])
		}
	}
}
