package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHashService implements ports.HashService using bcrypt. The same
// transform protects both account passwords and link PINs; the digest embeds
// its own salt and cost so Verify needs no parameters.
type BcryptHashService struct {
	cost int
}

// NewBcryptHashService creates a hash service at the default cost.
func NewBcryptHashService() *BcryptHashService {
	return &BcryptHashService{cost: bcrypt.DefaultCost}
}

// NewBcryptHashServiceWithCost creates a hash service at an explicit cost.
// Tests use the minimum cost to stay fast.
func NewBcryptHashServiceWithCost(cost int) *BcryptHashService {
	return &BcryptHashService{cost: cost}
}

// Hash generates a bcrypt digest of the secret.
func (s *BcryptHashService) Hash(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), s.cost)
	if err != nil {
		return "", fmt.Errorf("hashing secret: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether the secret matches the digest. Malformed digests
// verify as false rather than erroring; callers treat both the same way.
func (s *BcryptHashService) Verify(secret string, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
