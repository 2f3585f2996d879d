package cmpcount

// mustPanic runs fn and returns the value it panicked with, or nil.
func mustPanic(fn func()) (msg any) {
	defer func() {
		msg = recover()
	}()
	fn()
	return nil
}
