// Package noncryptor implements base64 encoding and decoding related functionality.
//
// Packages:
//   - base64: the standard alphabet codec with lenient decoding
//   - encoder: the Encoder abstraction selectable from the command line
//   - logger: structured logging used by the command line tools
//
// Related RFCs:
//   - RFC4648 https://datatracker.ietf.org/doc/html/rfc4648 The Base16, Base32, and Base64 Data Encodings
package noncryptor
