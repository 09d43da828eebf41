package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is a display currency. All stored prices are in USD.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
)

// Base is the currency every catalog price is stored in.
const Base = USD

var supported = []Currency{USD, EUR, GBP}

// Supported lists the selectable currencies in display order.
func Supported() []Currency {
	out := make([]Currency, len(supported))
	copy(out, supported)
	return out
}

func (c Currency) IsValid() bool {
	for _, v := range supported {
		if v == c {
			return true
		}
	}
	return false
}

func Parse(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrUnknownCurrency
	}
	return c, nil
}

// Format renders an amount with two decimals, e.g. "18.40".
func Format(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}
