// Package csrfmask provides double-submit CSRF token masking.
package csrfmask

import (
	"crypto/rand"
	"encoding/binary"
)

// randUint32 draws one uniformly random 32-bit value from the operating
// system CSPRNG. An unreadable entropy source is an environment failure,
// not a domain error: it panics rather than ever handing back a weak or
// zero value.
func randUint32() uint32 {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("csrfmask: operating system random source unavailable: " + err.Error())
	}
	return binary.LittleEndian.Uint32(b[:])
}
