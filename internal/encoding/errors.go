package encoding

import (
	"errors"
	"strings"
)

// Kind categorizes an encoding failure.
type Kind string

const (
	KindInvalidEncoding Kind = "invalid_encoding" // symbol outside the alphabet
	KindInvalidLength   Kind = "invalid_length"   // wrong length for the scheme
	KindInvalidChecksum Kind = "invalid_checksum" // bech32 checksum mismatch
	KindMixedCase       Kind = "mixed_case"       // bech32 upper and lower case mixed
	KindInvalidPadding  Kind = "invalid_padding"  // non-canonical padding or tail bits
)

// Error is returned by every codec operation that fails.
type Error struct {
	Kind   Kind
	Scheme string
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("encoding")
	if e.Scheme != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Scheme)
	}
	sb.WriteString(": ")
	sb.WriteString(string(e.Kind))
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	return sb.String()
}

// Is matches another *Error with the same kind. An empty Scheme on the target
// matches any scheme.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Scheme == "" || t.Scheme == e.Scheme)
}

// Sentinels for errors.Is.
var (
	ErrInvalidEncoding = &Error{Kind: KindInvalidEncoding}
	ErrInvalidLength   = &Error{Kind: KindInvalidLength}
	ErrInvalidChecksum = &Error{Kind: KindInvalidChecksum}
	ErrMixedCase       = &Error{Kind: KindMixedCase}
	ErrInvalidPadding  = &Error{Kind: KindInvalidPadding}
)

// ErrUnknownEncoding is returned by Parse for names it does not recognise.
var ErrUnknownEncoding = errors.New("encoding: unknown encoding")

func newError(kind Kind, scheme, detail string) *Error {
	return &Error{Kind: kind, Scheme: scheme, Detail: detail}
}

// KindOf returns the kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
