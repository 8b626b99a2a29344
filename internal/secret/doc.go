// Package secret provides Buffer, an owned byte container for decoded key
// material that is overwritten with zeros when released.
//
// # Lifetime
//
// Go has no destructors, so release is explicit: call Destroy (usually via
// defer) or run the work inside Scoped, which destroys the buffer on every exit
// path including panics. A runtime cleanup wipes buffers that become
// unreachable without being destroyed; it is a backstop only, since the
// collector decides when it runs.
//
// # Comparison
//
// Equal and EqualBytes compare contents with crypto/subtle, so the time taken
// depends on the lengths only and never on where the first mismatch is.
//
// # Printing
//
// Buffers redact themselves under fmt, so logging one by accident prints a
// placeholder instead of the secret.
package secret
