// Package csrfmask provides double-submit CSRF token masking.
package csrfmask

import (
	"crypto/subtle"
	"encoding/binary"
)

// TokenSize is the wire width of a secret token in bytes.
const TokenSize = 4

// Token is the server-held secret that submitted form tokens are
// ultimately compared against. Meant to be stored in the server session
// for its lifetime and never sent to the client directly; clients only
// ever see MaskedToken renderings of it.
//
// The zero value is a syntactically valid token but carries no entropy;
// always obtain session secrets from NewToken.
type Token struct {
	bits uint32
}

// NewToken generates a secret token from the operating system CSPRNG.
//
// Panics if the OS random source is unavailable.
func NewToken() Token {
	return Token{bits: randUint32()}
}

// ParseToken decodes the textual form of a secret token: standard padded
// base64 of exactly 4 bytes, little-endian uint32.
//
// Returns a *DecodeError when the text is not valid base64 or the
// decoded payload is not exactly TokenSize bytes.
func ParseToken(s string) (Token, error) {
	raw, err := decodeBase64(s, TokenSize)
	if err != nil {
		return Token{}, err
	}
	return Token{bits: binary.LittleEndian.Uint32(raw)}, nil
}

// Bytes returns the 4-byte little-endian encoding of the token. The
// returned slice is a fresh copy; mutating it does not affect the token.
func (t Token) Bytes() []byte {
	b := make([]byte, TokenSize)
	binary.LittleEndian.PutUint32(b, t.bits)
	return b
}

// String returns the standard padded base64 encoding of Bytes.
func (t Token) String() string {
	return textEncoding.EncodeToString(t.Bytes())
}

// Equal reports whether two tokens hold the same 32-bit secret.
//
// Uses constant-time comparison to prevent timing attacks.
func (t Token) Equal(other Token) bool {
	return subtle.ConstantTimeCompare(t.Bytes(), other.Bytes()) == 1
}
