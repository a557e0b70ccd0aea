package key

import "runtime"

// wipe zeroes the provided buffer. This is best-effort and aims to reduce
// the chance of the compiler eliding the writes.
//
//go:noinline
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
