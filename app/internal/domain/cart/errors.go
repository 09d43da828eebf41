package cart

import "errors"

var (
	ErrSessionNotFound = errors.New("cart session not found")
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 999")
	ErrSessionLimit    = errors.New("too many open cart sessions")
)
