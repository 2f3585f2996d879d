//go:build cmpcount_cachelinesize_128

package opt

// CacheLineSize_ pinned via the cmpcount_cachelinesize_128 build tag.
const CacheLineSize_ uintptr = 128
