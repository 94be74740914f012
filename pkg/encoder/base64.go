package encoder

import "github.com/tdeslauriers/noncryptor/pkg/base64"

// Base64Encoder implements the Encoder interface by delegating to the
// lenient standard base64 codec in pkg/base64. It never returns an error.
type Base64Encoder struct{}

var _ Encoder = (*Base64Encoder)(nil)

func NewBase64Encoder() *Base64Encoder {
	return &Base64Encoder{}
}

func (e *Base64Encoder) Decode(s string) ([]byte, error) {
	return base64.Decode(s), nil
}

func (e *Base64Encoder) Encode(data []byte) (string, error) {
	return base64.Encode(data), nil
}
