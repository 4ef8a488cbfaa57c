// Package csrfmask provides double-submit CSRF token masking.
package csrfmask

import (
	"errors"
	"fmt"
)

// Decode failure causes. Both surface through *DecodeError and stay
// distinguishable via errors.Is.
var (
	// ErrInvalidBase64 indicates the input was not valid standard base64.
	ErrInvalidBase64 = errors.New("invalid base64 input")

	// ErrUnexpectedLength indicates the decoded payload did not match the
	// fixed wire width of the target token type.
	ErrUnexpectedLength = errors.New("unexpected decoded length")
)

// DecodeError reports why a textual token could not be decoded.
type DecodeError struct {
	// Reason is one of ErrInvalidBase64 or ErrUnexpectedLength.
	Reason error

	// Want and Got carry the expected and actual byte lengths when
	// Reason is ErrUnexpectedLength.
	Want int
	Got  int

	// Cause is the underlying codec error, if any.
	Cause error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	switch {
	case e.Cause != nil:
		return fmt.Sprintf("csrfmask: %v: %v", e.Reason, e.Cause)
	case e.Reason == ErrUnexpectedLength:
		return fmt.Sprintf("csrfmask: %v: got %d bytes, want %d", e.Reason, e.Got, e.Want)
	default:
		return fmt.Sprintf("csrfmask: %v", e.Reason)
	}
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support, matching on the decode cause.
func (e *DecodeError) Is(target error) bool {
	return target == e.Reason
}
