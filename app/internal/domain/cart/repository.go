package cart

import "context"

// Repository keeps one Store per shopping session.
type Repository interface {
	Create(ctx context.Context) (sessionID string, store *Store, err error)
	Get(ctx context.Context, sessionID string) (*Store, error)
	Delete(ctx context.Context, sessionID string) error
}
