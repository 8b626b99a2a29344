package memzero_test

import (
	"testing"

	"ctenc/internal/util/memzero"
)

func TestZero(t *testing.T) {
	a := []byte{1, 2, 3}
	b := []byte("secret")
	memzero.Zero(a, b, nil)

	if !memzero.IsZero(a) || !memzero.IsZero(b) {
		t.Fatalf("buffers not wiped: %v %v", a, b)
	}
	if memzero.IsZero([]byte{0, 0, 1}) {
		t.Fatalf("IsZero reported a non-zero buffer as zero")
	}
	if !memzero.IsZero(nil) {
		t.Fatalf("IsZero(nil) = false")
	}
}
