package newsletter

import "context"

type Repository interface {
	// Create stores s and returns ErrAlreadySubscribed when the email is
	// already on the list. The check and the insert are one atomic step.
	Create(ctx context.Context, s *Subscriber) (*Subscriber, error)
	Delete(ctx context.Context, email string) error
}
