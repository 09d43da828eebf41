package newsletter

import "errors"

var (
	ErrAlreadySubscribed  = errors.New("email already subscribed")
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrInvalidEmail       = errors.New("invalid email")
)
