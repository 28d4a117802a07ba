// Package confcode generates reservation confirmation codes.
// The code is the customer's only credential to their reservation,
// so it is drawn from crypto/rand.
package confcode

import (
	"crypto/rand"
	"fmt"
)

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Length of a confirmation code.
const Length = 8

// Largest multiple of len(charset) below 256. Bytes at or above it are
// rejected so every charset position is equally likely.
const rejectAbove = 256 - 256%len(charset)

// Generate returns a uniformly random code of the given length over A-Z0-9.
func Generate(length int) (string, error) {
	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("confcode: read random: %w", err)
		}
		for _, b := range buf {
			if int(b) >= rejectAbove {
				continue
			}
			out = append(out, charset[int(b)%len(charset)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}
