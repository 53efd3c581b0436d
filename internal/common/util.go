package common

import "github.com/google/uuid"

// WipeByteArray overwrites b with zeros. Used for passwords read from the
// terminal once they have been sent. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// NewRequestID returns a fresh correlation id for the X-Request-ID header.
func NewRequestID() string {
	return uuid.NewString()
}
