package cart

import (
	"sync"

	"example.com/naturemart/app/internal/domain/currency"
	"example.com/naturemart/app/internal/domain/product"
)

// MaxLineQuantity caps the units of a single product in one cart, which
// also keeps ItemCount far from integer overflow.
const MaxLineQuantity = 999

// Line pairs a catalog product with a quantity between 1 and MaxLineQuantity.
type Line struct {
	Product  product.Product
	Quantity int
}

// SubtotalUSD is the line price before any currency conversion.
func (l Line) SubtotalUSD() float64 {
	return l.Product.PriceUSD * float64(l.Quantity)
}

// Store holds one shopper's cart and display currency.
//
// Lines keep the order in which products were first added and never hold
// two entries for the same product id. Operations on ids that are not in
// the cart are silently ignored. A Store must be created with NewStore.
type Store struct {
	mu       sync.RWMutex
	rates    currency.Rates
	lines    []Line
	selected currency.Currency
}

func NewStore(rates currency.Rates) *Store {
	if rates == nil {
		rates = currency.DefaultRates()
	}
	return &Store{
		rates:    rates,
		lines:    []Line{},
		selected: currency.Base,
	}
}

// Add puts one unit of p into the cart.
func (s *Store) Add(p product.Product) {
	s.AddToCart(p, 1)
}

// AddToCart increases the quantity of p's line by quantity, appending a new
// line when p is not in the cart yet. Non-positive quantities are ignored
// and the line saturates at MaxLineQuantity.
func (s *Store) AddToCart(p product.Product, quantity int) {
	if quantity < 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(p.ID); i >= 0 {
		s.lines[i].Quantity = addCapped(s.lines[i].Quantity, quantity)
		return
	}
	s.lines = append(s.lines, Line{Product: p, Quantity: min(quantity, MaxLineQuantity)})
}

// addCapped returns min(current+delta, MaxLineQuantity) without overflowing.
func addCapped(current, delta int) int {
	if delta >= MaxLineQuantity-current {
		return MaxLineQuantity
	}
	return current + delta
}

func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(productID); i >= 0 {
		s.removeAt(i)
	}
}

// UpdateQuantity sets the line's quantity to quantity clamped to
// [0, MaxLineQuantity]; a line that ends at zero is removed.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		s.removeAt(i)
		return
	}
	s.lines[i].Quantity = min(quantity, MaxLineQuantity)
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = []Line{}
}

// CartTotal sums the USD line subtotals first and converts the sum once.
func (s *Store) CartTotal(c currency.Currency) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return totalUSD(s.lines) * s.rates.Factor(c)
}

func totalUSD(lines []Line) float64 {
	var total float64
	for _, l := range lines {
		total += l.SubtotalUSD()
	}
	return total
}

// ItemCount is the number of units in the cart, not the number of lines.
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return itemCount(s.lines)
}

func itemCount(lines []Line) int {
	count := 0
	for _, l := range lines {
		count += l.Quantity
	}
	return count
}

// Lines returns a copy of the cart lines in insertion order.
func (s *Store) Lines() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) SelectedCurrency() currency.Currency {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// SetSelectedCurrency only changes how totals are displayed; stored prices
// stay in USD.
func (s *Store) SetSelectedCurrency(c currency.Currency) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = c
}

func (s *Store) indexOf(productID string) int {
	for i, l := range s.lines {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) removeAt(i int) {
	s.lines = append(s.lines[:i:i], s.lines[i+1:]...)
}
