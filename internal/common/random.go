package common

import (
	"crypto/rand"
	"encoding/base64"
)

// MakeRandToken generates a random URL-safe string from size bytes of
// entropy. The encoded result is longer than size (base64 expands by ~4/3).
//
// It returns an error if the random number generator fails.
func MakeRandToken(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
