package storefront

import (
	"context"

	dom "example.com/naturemart/app/internal/domain/storefront"
)

// HomeReviewLimit is how many testimonials the home page shows.
const HomeReviewLimit = 3

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

// Content returns the home page content with at most HomeReviewLimit
// reviews.
func (s *Service) Content(ctx context.Context) (*dom.Content, error) {
	c, err := s.repo.Content(ctx)
	if err != nil {
		return nil, err
	}
	out := *c
	if len(out.Reviews) > HomeReviewLimit {
		out.Reviews = out.Reviews[:HomeReviewLimit:HomeReviewLimit]
	}
	return &out, nil
}
