package encoder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBase64EmptyDecode(t *testing.T) {
	encoder := NewBase64Encoder()

	got, err := encoder.Decode("")
	require.NoError(t, err)

	require.Equal(t, []byte{}, got)
}

func TestBase64EmptyEncode(t *testing.T) {
	encoder := NewBase64Encoder()

	got, err := encoder.Encode([]byte{})
	require.NoError(t, err)

	require.Empty(t, got)
}

func TestBase64DecodeEncode(t *testing.T) {
	encoder := NewBase64Encoder()
	want := "QXRvbWljIERvZy4uLg=="

	decoded, err := encoder.Decode(want)
	require.NoError(t, err)

	got, err := encoder.Encode(decoded)
	require.NoError(t, err)

	require.Equal(t, want, got)
}

func TestBase64EncodeDecode(t *testing.T) {
	encoder := NewBase64Encoder()
	want := []byte{0xFF, 0xFE, 0x00, 'd', 'o', 'g'}

	encoded, err := encoder.Encode(want)
	require.NoError(t, err)

	got, err := encoder.Decode(encoded)
	require.NoError(t, err)

	require.Equal(t, want, got)
}

func TestBase64Encode(t *testing.T) {
	encoder := NewBase64Encoder()
	data := []byte("the quick brown fox")
	want := "dGhlIHF1aWNrIGJyb3duIGZveA=="

	got, err := encoder.Encode(data)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestNoopEncoder(t *testing.T) {
	encoder := NoopEncoder{}

	got, err := encoder.Encode([]byte("RG8gdGhl"))
	require.NoError(t, err)
	require.Equal(t, "RG8gdGhl", got)

	decoded, err := encoder.Decode(got)
	require.NoError(t, err)
	require.Equal(t, []byte("RG8gdGhl"), decoded)
}

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		name     string
		expected Encoder
	}{
		{name: Base64, expected: NewBase64Encoder()},
		{name: Noop, expected: NoopEncoder{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := New(tc.name)
			require.NoError(t, err)
			require.IsType(t, tc.expected, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		got, err := New("base32")
		require.ErrorIs(t, err, ErrUnknownEncoding)
		require.ErrorContains(t, err, `"base32"`)
		require.Nil(t, got)
	})
}
