package cmpcount

import (
	"unsafe"

	"github.com/llxisdsh/cmpcount/internal/opt"
)

// cacheLineSize is the size of a cache line in bytes.
const cacheLineSize = opt.CacheLineSize_

// counterPad is the padding needed after a single uint64 to fill its cache line.
const counterPad = (cacheLineSize - unsafe.Sizeof(uint64(0))%cacheLineSize) % cacheLineSize

// noCopy may be added to structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
//
// Note that it must not be embedded, due to the Lock and Unlock methods.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
