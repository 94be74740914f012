// Package base64 provides standard base64 encoding and decoding functions
// as defined in RFC 4648 Section 4.
//
// The encoding uses the standard alphabet (A-Z, a-z, 0-9, '+' and '/')
// and always pads its output with '=' to a multiple of four characters.
//
// Decoding is tolerant of noise in the input:
//   - Characters outside of the alphabet (whitespace, line breaks,
//     padding, stray punctuation) are skipped rather than rejected
//   - Trailing bits that do not form a whole byte are dropped
//   - The decoded bytes are returned as-is, never interpreted as text
//
// Both functions are pure and safe for concurrent use.
//
// http://www.rfc-editor.org/rfc/rfc4648#section-4
package base64
