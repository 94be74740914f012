package base64

// Alphabet is the standard base64 alphabet as defined in RFC 4648 Section 4.
// The index of each character is the 6-bit value it represents.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// Padding is appended to encoded output when the final group holds fewer
// than three bytes. It never carries data.
const Padding byte = '='

// invalid marks a byte that is not part of the alphabet in decodeMap.
const invalid = 0xFF

// decodeMap maps every possible input byte to its 6-bit value, or invalid.
var decodeMap [256]byte

func init() {
	for i := range decodeMap {
		decodeMap[i] = invalid
	}
	for i := 0; i < len(Alphabet); i++ {
		decodeMap[Alphabet[i]] = byte(i)
	}
}

// EncodedLen returns the length in bytes of the base64 encoding
// of an input buffer of length n.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum length in bytes of the decoded data
// corresponding to n characters of base64 text. Characters outside of
// the alphabet are skipped by Decode, so the result may be shorter.
func DecodedLen(n int) int {
	return n * 6 / 8
}

// Encode returns the base64 encoding of the given input, using the standard
// alphabet and '=' padding. The output length is always a multiple of four.
//
// Encode never fails; an empty input returns an empty string.
func Encode(input []byte) string {
	if len(input) == 0 {
		return ""
	}

	out := make([]byte, EncodedLen(len(input)))

	di := 0
	for si := 0; si < len(input); si += 3 {
		// Missing bytes in the final group are zero filled.
		var b0, b1, b2 byte
		n := len(input) - si
		b0 = input[si]
		if n > 1 {
			b1 = input[si+1]
		}
		if n > 2 {
			b2 = input[si+2]
		}

		out[di+0] = Alphabet[b0>>2]
		out[di+1] = Alphabet[(b0&0x03)<<4|b1>>4]
		out[di+2] = Alphabet[(b1&0x0F)<<2|b2>>6]
		out[di+3] = Alphabet[b2&0x3F]

		switch n {
		case 1:
			out[di+2] = Padding
			out[di+3] = Padding
		case 2:
			out[di+3] = Padding
		}

		di += 4
	}

	return string(out)
}

// Decode returns the bytes represented by the base64 text in input.
//
// Decoding is lenient: any character that is not part of the alphabet,
// including padding, whitespace and line breaks, is skipped. Bits left
// over once the input is exhausted (at most five) are discarded.
//
// The result is returned as raw bytes and is never checked for being valid
// text, so arbitrary binary payloads decode safely. Decode never fails; an
// empty input returns an empty slice.
func Decode(input string) []byte {
	out := make([]byte, 0, DecodedLen(len(input)))

	var (
		acc  uint32 // bit accumulator, newest bits at the low end
		bits uint   // number of valid bits held in acc
	)
	for i := 0; i < len(input); i++ {
		v := decodeMap[input[i]]
		if v == invalid {
			continue
		}

		acc = acc<<6 | uint32(v)
		bits += 6

		for bits >= 8 {
			bits -= 8
			out = append(out, byte(acc>>bits))
			acc &= 1<<bits - 1
		}
	}

	return out
}
