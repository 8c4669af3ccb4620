package common

import (
	"golang.org/x/crypto/bcrypt"
)

// PlaceholderPassword is assigned to accounts created without a password.
// Login reports is_set_password while the stored hash still matches it.
const PlaceholderPassword = "PRO_APP"

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{Cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// IsPlaceholder reports whether hash was produced from PlaceholderPassword.
func IsPlaceholder(h PasswordHasher, hash string) bool {
	return h.Compare(hash, PlaceholderPassword) == nil
}

func HashPassword(password string) (string, error) {
	return NewBcryptHasher().Hash(password)
}

func CheckPassword(password, hashedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
