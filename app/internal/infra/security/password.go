package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores everything after 72 bytes, so longer passwords are refused
// instead of being silently truncated.
const maxPasswordBytes = 72

var ErrPasswordTooLong = errors.New("password is longer than 72 bytes")

type BcryptService struct {
	cost int
}

// NewBcryptService uses bcrypt.DefaultCost when cost is outside the range
// bcrypt accepts.
func NewBcryptService(cost int) *BcryptService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptService{cost: cost}
}

func (s *BcryptService) Hash(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *BcryptService) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
