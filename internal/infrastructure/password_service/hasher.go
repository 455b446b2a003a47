package passwordservice

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/yonatanberih/pulse/internal/domain/contract"
)

// Hasher implements contract.IHasher using bcrypt.
type Hasher struct {
	cost int
}

// NewHasher creates a new Hasher with the default bcrypt cost.
func NewHasher() contract.IHasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

var _ contract.IHasher = (*Hasher)(nil)

// HashPassword hashes a plaintext password.
func (h *Hasher) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// ComparePassword verifies a plaintext password against a stored hash.
func (h *Hasher) ComparePassword(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}
