package currency

import "fmt"

// Rates maps each currency to the amount of it one USD buys.
type Rates map[Currency]float64

// DefaultRates is the static table the storefront ships with.
func DefaultRates() Rates {
	return Rates{
		USD: 1,
		EUR: 0.92,
		GBP: 0.79,
	}
}

// Validate checks that every supported currency has a positive rate.
func (r Rates) Validate() error {
	for _, c := range supported {
		rate, ok := r[c]
		if !ok {
			return fmt.Errorf("%s: %w", c, ErrUnknownCurrency)
		}
		if rate <= 0 {
			return fmt.Errorf("%s: %w", c, ErrInvalidRate)
		}
	}
	return nil
}

// Factor is the multiplier from USD into c. Unknown currencies fall back
// to 1 so a display never turns into zero.
func (r Rates) Factor(c Currency) float64 {
	rate, ok := r[c]
	if !ok {
		return 1
	}
	base, ok := r[Base]
	if !ok || base == 0 {
		return rate
	}
	return rate / base
}

func (r Rates) Convert(amountUSD float64, c Currency) float64 {
	return amountUSD * r.Factor(c)
}
