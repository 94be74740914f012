// Package encoder contains the data encodings selectable from the command line.
package encoder

import (
	"errors"
	"fmt"
)

// ErrUnknownEncoding is returned by New for an unsupported encoding name.
var ErrUnknownEncoding = errors.New("unknown encoding")

const (
	Base64 = "base64"
	Noop   = "noop"
)

type Encoder interface {
	Decode(string) ([]byte, error)
	Encode([]byte) (string, error)
}

// New returns the Encoder registered under the given name.
func New(name string) (Encoder, error) {
	switch name {
	case Base64:
		return NewBase64Encoder(), nil
	case Noop:
		return NoopEncoder{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
}

type NoopEncoder struct{}

var _ Encoder = (*NoopEncoder)(nil)

func (e NoopEncoder) Decode(s string) ([]byte, error) {
	return []byte(s), nil
}

func (e NoopEncoder) Encode(data []byte) (string, error) {
	return string(data), nil
}
