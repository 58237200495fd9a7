// Package identity holds the password hashing and credential verification
// collaborators injected into the service layer.
package identity

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/tradehub/tradehub-server/internal/model"
)

var _ model.PasswordHasher = (*Hasher)(nil)

// Hasher produces salted bcrypt digests. bcrypt generates a fresh salt per
// call, so two hashes of the same password never match byte for byte.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher with the given bcrypt cost factor.
func NewHasher(cost int) *Hasher {
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}
