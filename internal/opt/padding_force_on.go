//go:build cmpcount_enable_padding

package opt

// PaddingMult_ forces cache-line padding of shared counters.
// Use: go build -tags=cmpcount_enable_padding
const PaddingMult_ = 1
