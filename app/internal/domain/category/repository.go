package category

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
}
