package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher is the one-way transform applied before persisting a
// password, and the comparison primitive used at login. The rest of the
// system treats it as opaque.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Compare returns nil when plain matches the stored hash.
	Compare(hash, plain string) error
}

type bcryptHasher struct {
	cost int
}

// NewPasswordHasher returns the bcrypt-backed hasher used in production.
func NewPasswordHasher() PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *bcryptHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *bcryptHasher) Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
