package memory

import (
	"context"
	"fmt"

	domcategory "example.com/naturemart/app/internal/domain/category"
)

type CategoryRepository struct {
	categories []*domcategory.Category
}

func NewCategoryRepository(categories []*domcategory.Category) (*CategoryRepository, error) {
	r := &CategoryRepository{categories: make([]*domcategory.Category, 0, len(categories))}
	for _, c := range categories {
		if !c.Name.IsValid() {
			return nil, fmt.Errorf("category %q: %w", c.Name, domcategory.ErrInvalidCategory)
		}
		cloned := *c
		if cloned.Slug == "" {
			cloned.Slug = c.Name.Slug()
		}
		r.categories = append(r.categories, &cloned)
	}
	return r, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domcategory.Category, error) {
	out := make([]*domcategory.Category, 0, len(r.categories))
	for _, c := range r.categories {
		cloned := *c
		out = append(out, &cloned)
	}
	return out, nil
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*domcategory.Category, error) {
	for _, c := range r.categories {
		if c.Slug == slug {
			cloned := *c
			return &cloned, nil
		}
	}
	return nil, domcategory.ErrCategoryNotFound
}
