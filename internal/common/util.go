package common

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomHex returns size random bytes encoded as hex (2*size characters).
// It is used for generated secrets such as a development JWT key.
func RandomHex(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// RandomBytes returns n bytes from crypto/rand. It panics only if the
// system randomness source is broken.
func RandomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// Wipe zeroes b in place. Passwords read from the terminal go through it
// once they were sent.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
