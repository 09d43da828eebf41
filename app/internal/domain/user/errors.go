package user

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailAlreadyUsed  = errors.New("email already used")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrPasswordMismatch  = errors.New("passwords don't match")
)
