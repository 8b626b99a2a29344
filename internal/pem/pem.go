package pem

import (
	"bytes"
	"errors"
	"fmt"

	"ctenc/internal/encoding"
	"ctenc/internal/secret"
)

const lineWidth = 64

var (
	// ErrMalformed is returned for text without well-formed boundaries.
	ErrMalformed = errors.New("pem: malformed document")
	// ErrLabelMismatch is returned when the document label is not the expected one.
	ErrLabelMismatch = errors.New("pem: unexpected label")
)

func beginLine(label string) string { return "-----BEGIN " + label + "-----" }
func endLine(label string) string   { return "-----END " + label + "-----" }

// Encode armors der under label, wrapping the body at 64 columns.
// The result holds the encoded secret; wipe it when done.
func Encode(label string, der []byte) (*secret.Buffer, error) {
	body, err := encoding.EncodeToBuffer(encoding.Base64Std, der)
	if err != nil {
		return nil, err
	}
	defer body.Destroy()

	begin, end := beginLine(label), endLine(label)
	lines := (body.Len() + lineWidth - 1) / lineWidth
	out := secret.New(len(begin) + 1 + body.Len() + lines + len(end) + 1)
	p := out.Bytes()

	n := copy(p, begin)
	p[n] = '\n'
	n++
	for b := body.Bytes(); len(b) > 0; {
		k := min(lineWidth, len(b))
		n += copy(p[n:], b[:k])
		p[n] = '\n'
		n++
		b = b[k:]
	}
	n += copy(p[n:], end)
	p[n] = '\n'
	return out, nil
}

// Label returns the label of the first BEGIN boundary in text.
func Label(text []byte) (string, error) {
	text = bytes.TrimLeft(text, " \t\r\n")
	rest, ok := bytes.CutPrefix(text, []byte("-----BEGIN "))
	if !ok {
		return "", ErrMalformed
	}
	label, _, ok := bytes.Cut(rest, []byte("-----"))
	if !ok || bytes.ContainsAny(label, "\r\n") {
		return "", ErrMalformed
	}
	return string(label), nil
}

// HasLabel reports whether text starts with a BEGIN boundary for label.
func HasLabel(text []byte, label string) bool {
	got, err := Label(text)
	return err == nil && got == label
}

// Decode parses a single armored document and returns its label and the
// decoded body. When want is non-empty the label must equal it.
func Decode(text []byte, want string) (string, *secret.Buffer, error) {
	label, err := Label(text)
	if err != nil {
		return "", nil, err
	}
	if want != "" && label != want {
		return "", nil, fmt.Errorf("%w: got %q, want %q", ErrLabelMismatch, label, want)
	}

	text = bytes.TrimLeft(text, " \t\r\n")
	_, rest, _ := bytes.Cut(text, []byte(beginLine(label)))
	body, tail, ok := bytes.Cut(rest, []byte(endLine(label)))
	if !ok {
		return "", nil, fmt.Errorf("%w: missing %s", ErrMalformed, endLine(label))
	}
	if len(bytes.TrimSpace(tail)) != 0 {
		return "", nil, fmt.Errorf("%w: trailing data", ErrMalformed)
	}

	// Joined base64 is as sensitive as the key it encodes.
	joined := secret.New(len(body))
	defer joined.Destroy()
	n := 0
	for _, c := range body {
		switch c {
		case '\r', '\n', ' ', '\t':
			continue
		}
		joined.Bytes()[n] = c
		n++
	}

	der, err := encoding.Decode(encoding.Base64Std, joined.Bytes()[:n])
	if err != nil {
		return "", nil, fmt.Errorf("pem: body: %w", err)
	}
	return label, der, nil
}
