package secret

import (
	"crypto/subtle"
	"fmt"
	"runtime"

	"ctenc/internal/util/memzero"
)

const redacted = "[REDACTED]"

// Buffer owns a byte slice holding secret data.
type Buffer struct {
	data      []byte
	cleanup   runtime.Cleanup
	destroyed bool
}

// New returns a zero-filled buffer of n bytes.
func New(n int) *Buffer {
	b := &Buffer{data: make([]byte, n)}
	b.cleanup = runtime.AddCleanup(b, wipe, b.data)
	return b
}

// Take copies src into a new buffer and wipes src.
func Take(src []byte) *Buffer {
	b := New(len(src))
	copy(b.data, src)
	memzero.Zero(src)
	return b
}

func wipe(data []byte) { memzero.Zero(data) }

// Bytes returns the underlying slice. It stays valid until Destroy.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// Len returns the number of bytes held.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Clone returns an independent copy of b.
func (b *Buffer) Clone() *Buffer {
	c := New(b.Len())
	copy(c.data, b.Bytes())
	return c
}

// Truncate shrinks the buffer to n bytes, wiping the bytes it drops.
func (b *Buffer) Truncate(n int) {
	if n < 0 || n > len(b.data) {
		panic(fmt.Sprintf("secret: truncate to %d out of range [0,%d]", n, len(b.data)))
	}
	memzero.Zero(b.data[n:])
	b.data = b.data[:n]
}

// Equal reports whether b and o hold the same bytes, in constant time for
// equal lengths.
func (b *Buffer) Equal(o *Buffer) bool {
	return b.EqualBytes(o.Bytes())
}

// EqualBytes reports whether b holds exactly p, in constant time for equal
// lengths.
func (b *Buffer) EqualBytes(p []byte) bool {
	return subtle.ConstantTimeCompare(b.Bytes(), p) == 1
}

// Destroy wipes the buffer and releases it. It is safe to call more than once.
func (b *Buffer) Destroy() {
	if b == nil || b.destroyed {
		return
	}
	memzero.Zero(b.data[:cap(b.data)])
	b.cleanup.Stop()
	b.data = nil
	b.destroyed = true
}

// Destroyed reports whether Destroy has been called.
func (b *Buffer) Destroyed() bool { return b != nil && b.destroyed }

// Scoped calls fn with the buffer contents and destroys the buffer afterwards,
// whether fn returns normally, fails or panics.
func (b *Buffer) Scoped(fn func(p []byte) error) error {
	defer b.Destroy()
	return fn(b.Bytes())
}

// String implements fmt.Stringer without revealing the contents.
func (b *Buffer) String() string { return redacted }

// GoString implements fmt.GoStringer without revealing the contents.
func (b *Buffer) GoString() string {
	return fmt.Sprintf("secret.Buffer{len:%d}", b.Len())
}

// Format prints the redaction placeholder for every verb.
func (b *Buffer) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		_, _ = fmt.Fprint(f, b.GoString())
		return
	}
	_, _ = fmt.Fprint(f, redacted)
}
