// Package auth holds the credential primitives of the server: one-way login
// password hashing and signed session tokens.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/passkeeper/internal/common"
)

// PasswordHasher hashes login passwords one way and verifies candidates
// against a stored hash.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// BcryptHasher implements PasswordHasher with bcrypt. Every Hash call draws
// a fresh random salt, so equal inputs produce different hashes.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using cost, clamped into bcrypt's valid range.
func NewBcryptHasher(cost int) *BcryptHasher {
	switch {
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt encoding of plaintext. Inputs longer than 72 bytes
// are rejected by bcrypt with bcrypt.ErrPasswordTooLong.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext produced hash. A malformed hash is simply
// a mismatch. bcrypt only reads the first 72 bytes, so longer candidates
// never match.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	ok := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
	return ok && len(plaintext) <= common.MaxPasswordLength
}
