// Package csrfmask provides the token value types for a double-submit
// CSRF defense: a server-held secret token and its per-request masked
// form embedded in HTML forms.
//
// Every rendered form receives a fresh MaskedToken, so the value on the
// wire differs on every render while still decoding deterministically to
// the same server-side Token.
//
// Token Format:
//
//   - Token: 4 bytes, little-endian uint32
//   - MaskedToken: 8 bytes, little-endian uint64
//   - MaskedToken layout: bytes 0-3 masked word (otp XOR secret),
//     bytes 4-7 one-time pad word
//   - Text form: standard base64 alphabet, with padding
//
// Security:
//
//   - Uses crypto/rand for CSPRNG
//   - Constant-time comparison for secret equality
//   - Masking provides per-render uniqueness, not authenticity: this is
//     not a MAC, and nothing binds a MaskedToken to a session
//
// Session storage of the Token and form embedding of the MaskedToken
// text are the caller's responsibility.
package csrfmask
