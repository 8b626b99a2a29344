// Package memzero wipes memory that held secret material.
package memzero

import "runtime"

// Zero overwrites every byte of each buffer with zero.
//
// The buffers are kept live until the writes complete so the compiler cannot
// treat the stores as dead.
//
//go:noinline
func Zero(bufs ...[]byte) {
	for _, b := range bufs {
		clear(b)
	}
	runtime.KeepAlive(bufs)
}

// IsZero reports whether b holds only zero bytes. It inspects every byte.
func IsZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0
}
