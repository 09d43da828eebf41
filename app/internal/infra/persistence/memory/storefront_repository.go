package memory

import (
	"context"
	"fmt"

	domstorefront "example.com/naturemart/app/internal/domain/storefront"
)

type StorefrontRepository struct {
	content *domstorefront.Content
}

func NewStorefrontRepository(content *domstorefront.Content) (*StorefrontRepository, error) {
	for _, r := range content.Reviews {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("review %q: %w", r.ID, err)
		}
	}
	return &StorefrontRepository{content: content}, nil
}

// Content returns the shared static content; callers must not modify it.
func (r *StorefrontRepository) Content(ctx context.Context) (*domstorefront.Content, error) {
	return r.content, nil
}
