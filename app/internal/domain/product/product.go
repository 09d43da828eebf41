package product

import "example.com/naturemart/app/internal/domain/category"

// Product is an immutable catalog entry. Prices are stored in USD.
// Rating and Reviews are nil when the catalog has no value for them.
type Product struct {
	ID          string
	Name        string
	Description string
	PriceUSD    float64
	Category    category.Name
	ImageURL    string
	Rating      *int
	Reviews     *int
	Featured    bool
}

func (p *Product) HasRating() bool {
	return p.Rating != nil
}
