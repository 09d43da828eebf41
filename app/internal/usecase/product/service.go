package product

import (
	"context"

	dom "example.com/naturemart/app/internal/domain/product"
)

// DefaultFeaturedLimit is how many best sellers the home page shows.
const DefaultFeaturedLimit = 8

type Service struct {
	repo          dom.Repository
	featuredLimit int
}

func NewService(repo dom.Repository, featuredLimit int) *Service {
	if featuredLimit <= 0 {
		featuredLimit = DefaultFeaturedLimit
	}
	return &Service{repo: repo, featuredLimit: featuredLimit}
}

func (s *Service) GetByID(ctx context.Context, id string) (*dom.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter dom.ListFilter) ([]*dom.Product, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Featured(ctx context.Context) ([]*dom.Product, error) {
	return s.repo.Featured(ctx, s.featuredLimit)
}
