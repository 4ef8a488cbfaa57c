// Package csrfmask provides double-submit CSRF token masking.
package csrfmask

import "encoding/base64"

// textEncoding is the wire alphabet for both token types: the standard
// base64 alphabet, with padding.
var textEncoding = base64.StdEncoding

// decodeBase64 decodes standard padded base64 text and enforces the
// fixed wire width of the target token type.
func decodeBase64(s string, want int) ([]byte, error) {
	raw, err := textEncoding.DecodeString(s)
	if err != nil {
		return nil, &DecodeError{Reason: ErrInvalidBase64, Cause: err}
	}
	if len(raw) != want {
		return nil, &DecodeError{Reason: ErrUnexpectedLength, Want: want, Got: len(raw)}
	}
	return raw, nil
}
