package cmpcount

import (
	"cmp"
	"slices"
	"unsafe"
)

// Value is a uint64 whose every ordering comparison is counted by backend B.
//
// The backend is part of the type, not a field: Value[B] has exactly the
// size and alignment of a uint64.
//
// Equality is derived from ordering. Equal calls Compare, so an equality
// check counts as one comparison just like an ordering check does.
type Value[B Backend] struct {
	_ [0]B
	v uint64
}

// Layout: wrapping must not add storage for any backend.
var (
	_ [unsafe.Sizeof(Value[Unsync]{}) - unsafe.Sizeof(uint64(0))]struct{}
	_ [unsafe.Sizeof(uint64(0)) - unsafe.Sizeof(Value[Unsync]{})]struct{}
	_ [unsafe.Sizeof(Value[Atomic]{}) - unsafe.Sizeof(uint64(0))]struct{}
	_ [unsafe.Sizeof(uint64(0)) - unsafe.Sizeof(Value[Atomic]{})]struct{}
	_ [unsafe.Sizeof(Value[Local]{}) - unsafe.Sizeof(uint64(0))]struct{}
	_ [unsafe.Sizeof(uint64(0)) - unsafe.Sizeof(Value[Local]{})]struct{}
	_ [unsafe.Sizeof(Value[Toggleable]{}) - unsafe.Sizeof(uint64(0))]struct{}
	_ [unsafe.Sizeof(uint64(0)) - unsafe.Sizeof(Value[Toggleable]{})]struct{}
)

// Wrap returns x as a counted value.
func Wrap[B Backend](x uint64) Value[B] {
	return Value[B]{v: x}
}

// WrapAll wraps every element of xs into a new slice.
func WrapAll[B Backend](xs []uint64) []Value[B] {
	vs := make([]Value[B], len(xs))
	for i, x := range xs {
		vs[i].v = x
	}
	return vs
}

// Raw returns the wrapped scalar.
func (a Value[B]) Raw() uint64 {
	return a.v
}

// Compare counts one comparison and returns -1, 0 or +1 depending on
// whether a is less than, equal to or greater than b.
func (a Value[B]) Compare(b Value[B]) int {
	var k B
	k.Inc()
	return cmp.Compare(a.v, b.v)
}

// Equal reports whether a and b hold the same scalar.
// It counts one comparison.
func (a Value[B]) Equal(b Value[B]) bool {
	return a.Compare(b) == 0
}

// Less reports whether a orders before b.
// It counts one comparison.
func (a Value[B]) Less(b Value[B]) bool {
	return a.Compare(b) < 0
}

// Sort sorts vs in ascending order with an unstable comparison sort.
// Every comparison the sort makes is counted by B.
func Sort[B Backend](vs []Value[B]) {
	slices.SortFunc(vs, Value[B].Compare)
}

// CompareFunc returns a comparison function over raw scalars that counts
// each call into c. It lets a caller own the counter and hand it to a sort
// explicitly:
//
//	var c cmpcount.AtomicCounter
//	slices.SortFunc(xs, cmpcount.CompareFunc(&c))
func CompareFunc(c Counter) func(a, b uint64) int {
	return func(a, b uint64) int {
		c.Inc()
		return cmp.Compare(a, b)
	}
}
