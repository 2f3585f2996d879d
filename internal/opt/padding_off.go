//go:build (amd64 || 386 || arm || mips || mipsle || wasm) && !cmpcount_disable_padding && !cmpcount_enable_padding

package opt

// PaddingMult_ is 0 by default for:
// - amd64
// - 32-bit architectures (386, arm, mips, mipsle, wasm)
const PaddingMult_ = 0
