package category

import (
	"context"

	dom "example.com/naturemart/app/internal/domain/category"
)

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*dom.Category, error) {
	return s.repo.List(ctx)
}

// GetBySlug accepts a slug or a display name ("Natural Care").
func (s *Service) GetBySlug(ctx context.Context, slug string) (*dom.Category, error) {
	name, err := dom.ParseName(slug)
	if err != nil {
		return nil, dom.ErrCategoryNotFound
	}
	return s.repo.GetBySlug(ctx, name.Slug())
}
