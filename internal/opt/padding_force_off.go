//go:build cmpcount_disable_padding

package opt

// PaddingMult_ disables cache-line padding of shared counters.
// Use: go build -tags=cmpcount_disable_padding
const PaddingMult_ = 0
