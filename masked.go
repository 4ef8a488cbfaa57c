// Package csrfmask provides double-submit CSRF token masking.
package csrfmask

import "encoding/binary"

// MaskedTokenSize is the wire width of a masked token in bytes.
const MaskedTokenSize = 8

// MaskedToken is the per-request disguise of a Token, safe to embed in a
// hidden form field. It packs a fresh 32-bit one-time pad in the high
// word and the pad XORed with the secret in the low word, so every
// rendered form carries a different value while still unmasking to the
// same secret.
//
// Masking provides per-render uniqueness only. It is not a MAC: any
// 64-bit pattern is a syntactically valid MaskedToken, and unmasking
// attacker-supplied bits yields some Token with no authenticity
// guarantee. The caller decides whether the unmasked value matches the
// session secret.
type MaskedToken struct {
	bits uint64
}

// NewMaskedToken masks secret with a fresh one-time pad drawn from the
// operating system CSPRNG.
//
// Panics if the OS random source is unavailable.
func NewMaskedToken(secret Token) MaskedToken {
	otp := randUint32()
	masked := otp ^ secret.bits
	return MaskedToken{bits: uint64(otp)<<32 | uint64(masked)}
}

// Unmask recovers the secret token by XORing the two halves. Pure and
// total: it never fails, regardless of where the bits came from.
func (m MaskedToken) Unmask() Token {
	otp := uint32(m.bits >> 32)
	masked := uint32(m.bits)
	return Token{bits: otp ^ masked}
}

// ParseMaskedToken decodes the textual form of a masked token: standard
// padded base64 of exactly 8 bytes, little-endian uint64.
//
// Returns a *DecodeError when the text is not valid base64 or the
// decoded payload is not exactly MaskedTokenSize bytes.
func ParseMaskedToken(s string) (MaskedToken, error) {
	raw, err := decodeBase64(s, MaskedTokenSize)
	if err != nil {
		return MaskedToken{}, err
	}
	return MaskedToken{bits: binary.LittleEndian.Uint64(raw)}, nil
}

// Bytes returns the 8-byte little-endian encoding of the masked token:
// bytes 0-3 hold the masked word, bytes 4-7 the one-time pad. The
// returned slice is a fresh copy.
func (m MaskedToken) Bytes() []byte {
	b := make([]byte, MaskedTokenSize)
	binary.LittleEndian.PutUint64(b, m.bits)
	return b
}

// String returns the standard padded base64 encoding of Bytes.
func (m MaskedToken) String() string {
	return textEncoding.EncodeToString(m.Bytes())
}

// Verify unmasks a submitted token and compares it against the session
// secret.
//
// Uses constant-time comparison to prevent timing attacks.
func Verify(secret Token, masked MaskedToken) bool {
	return masked.Unmask().Equal(secret)
}
