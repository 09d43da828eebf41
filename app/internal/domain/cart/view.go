package cart

import "example.com/naturemart/app/internal/domain/currency"

// ViewLine is a cart line priced in the display currency.
type ViewLine struct {
	ProductID    string
	Name         string
	ImageURL     string
	Quantity     int
	UnitPriceUSD float64
	UnitPrice    float64
	LineTotal    float64
}

// View is a consistent snapshot of a Store for rendering.
type View struct {
	Currency  currency.Currency
	Lines     []ViewLine
	ItemCount int
	Total     float64
}

// View prices the cart in the selected currency. The total is converted
// from the USD sum, so it can differ in the last digit from adding up
// LineTotal values.
func (s *Store) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	factor := s.rates.Factor(s.selected)
	v := View{
		Currency:  s.selected,
		Lines:     make([]ViewLine, 0, len(s.lines)),
		ItemCount: itemCount(s.lines),
		Total:     totalUSD(s.lines) * factor,
	}
	for _, l := range s.lines {
		v.Lines = append(v.Lines, ViewLine{
			ProductID:    l.Product.ID,
			Name:         l.Product.Name,
			ImageURL:     l.Product.ImageURL,
			Quantity:     l.Quantity,
			UnitPriceUSD: l.Product.PriceUSD,
			UnitPrice:    l.Product.PriceUSD * factor,
			LineTotal:    l.SubtotalUSD() * factor,
		})
	}
	return v
}
