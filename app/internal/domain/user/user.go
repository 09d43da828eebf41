package user

import (
	"strings"
	"time"
)

// User is a mock storefront account. Accounts live only in memory.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// NormalizeEmail lower-cases and trims an address before lookup.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
