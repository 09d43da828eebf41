package memory

import (
	"context"
	"fmt"

	domproduct "example.com/naturemart/app/internal/domain/product"
)

// ProductRepository serves a fixed catalog. Products are never mutated
// after construction; callers get copies.
type ProductRepository struct {
	products []*domproduct.Product
	byID     map[string]*domproduct.Product
}

func NewProductRepository(products []*domproduct.Product) (*ProductRepository, error) {
	r := &ProductRepository{
		products: make([]*domproduct.Product, 0, len(products)),
		byID:     make(map[string]*domproduct.Product, len(products)),
	}
	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %q: empty id", p.Name)
		}
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("product %q: duplicate id", p.ID)
		}
		if p.PriceUSD < 0 {
			return nil, fmt.Errorf("product %q: negative price", p.ID)
		}
		if !p.Category.IsValid() {
			return nil, fmt.Errorf("product %q: invalid category %q", p.ID, p.Category)
		}
		cloned := *p
		r.products = append(r.products, &cloned)
		r.byID[p.ID] = &cloned
	}
	return r, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domproduct.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domproduct.ErrProductNotFound
	}
	cloned := *p
	return &cloned, nil
}

func (r *ProductRepository) List(ctx context.Context, filter domproduct.ListFilter) ([]*domproduct.Product, error) {
	return cloneAll(domproduct.Filter(r.products, filter)), nil
}

func (r *ProductRepository) Featured(ctx context.Context, limit int) ([]*domproduct.Product, error) {
	featured := domproduct.Filter(r.products, domproduct.ListFilter{
		Criteria: domproduct.FilterCriteria{FeaturedOnly: true},
	})
	if limit > 0 && len(featured) > limit {
		featured = featured[:limit]
	}
	return cloneAll(featured), nil
}

func cloneAll(products []*domproduct.Product) []*domproduct.Product {
	out := make([]*domproduct.Product, 0, len(products))
	for _, p := range products {
		cloned := *p
		out = append(out, &cloned)
	}
	return out
}
