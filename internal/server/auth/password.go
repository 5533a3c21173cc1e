// Package auth provides the credential primitives: one-way password hashing
// and opaque bearer-token value generation.
package auth

import (
	"github.com/avasiljevs/itemvault/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted bcrypt hash. Output differs between calls
// for the same input; VerifyPassword is the only way to check it.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches the stored hash.
func VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// tokenEntropyBytes is the amount of randomness in a bearer token value.
const tokenEntropyBytes = 32

// NewTokenValue generates a random URL-safe bearer token value.
func NewTokenValue() (string, error) {
	return common.MakeRandToken(tokenEntropyBytes)
}
