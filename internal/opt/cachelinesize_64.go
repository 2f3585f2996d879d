//go:build cmpcount_cachelinesize_64

package opt

// CacheLineSize_ pinned via the cmpcount_cachelinesize_64 build tag.
const CacheLineSize_ uintptr = 64
