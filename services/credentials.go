package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest password bcrypt can hash without
// truncation.
const MaxPasswordBytes = 72

var (
	ErrEmptyPassword = errors.New("password must not be empty")
	ErrMalformedHash = errors.New("malformed password hash")
)

// PasswordHasher hashes and verifies user passwords with bcrypt.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher falls back to bcrypt.DefaultCost for out-of-range costs.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns a salted bcrypt hash. Every call draws a fresh salt.
// Passwords longer than MaxPasswordBytes are rejected by bcrypt; callers
// bound the length before hashing.
func (h *PasswordHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches storedHash. A mismatch is not an
// error; a hash bcrypt cannot parse is.
func (h *PasswordHasher) Verify(password, storedHash string) (bool, error) {
	if len(password) > MaxPasswordBytes {
		// Never produced by Hash, but the stored hash must still be well formed.
		if _, err := bcrypt.Cost([]byte(storedHash)); err != nil {
			return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
		}
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
}
