package product

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"example.com/naturemart/app/internal/domain/category"
)

// FilterCriteria holds the refinements chosen in the filter dialog.
// MinPrice and MaxPrice are kept as entered; a bound that does not parse
// as a finite number is ignored rather than rejected.
type FilterCriteria struct {
	MinPrice     string
	MaxPrice     string
	MinRating    int // 0 means any rating
	FeaturedOnly bool
}

// ListFilter is the full catalog query: free text, optional category and
// the filter criteria. The zero value matches every product.
type ListFilter struct {
	Search   string
	Category *category.Name
	Criteria FilterCriteria
}

// Matches reports whether p passes every predicate of the filter.
func (f ListFilter) Matches(p *Product) bool {
	return f.matchesSearch(p) &&
		f.matchesCategory(p) &&
		f.Criteria.matchesPrice(p) &&
		f.Criteria.matchesRating(p) &&
		f.Criteria.matchesFeatured(p)
}

func (f ListFilter) matchesSearch(p *Product) bool {
	if f.Search == "" {
		return true
	}
	term := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term)
}

func (f ListFilter) matchesCategory(p *Product) bool {
	return f.Category == nil || p.Category == *f.Category
}

func (c FilterCriteria) matchesPrice(p *Product) bool {
	if lo, ok := parseBound(c.MinPrice); ok && p.PriceUSD < lo {
		return false
	}
	if hi, ok := parseBound(c.MaxPrice); ok && p.PriceUSD > hi {
		return false
	}
	return true
}

func (c FilterCriteria) matchesRating(p *Product) bool {
	if c.MinRating <= 0 {
		return true
	}
	return p.HasRating() && *p.Rating >= c.MinRating
}

func (c FilterCriteria) matchesFeatured(p *Product) bool {
	return !c.FeaturedOnly || p.Featured
}

// parseBound accepts only a complete finite number; input with trailing
// garbage such as "12abc" is no bound at all.
func parseBound(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Filter returns the products matching f in catalog order.
// The input slice is not modified.
func Filter(products []*Product, f ListFilter) []*Product {
	out := make([]*Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// IsZero reports whether no criterion is active.
func (c FilterCriteria) IsZero() bool {
	return c.MinPrice == "" && c.MaxPrice == "" && c.MinRating <= 0 && !c.FeaturedOnly
}

// Summary renders the active criteria as shown above the product grid,
// e.g. "Active Filters: Price: $10 - $20, Rating: 4+ Stars, Best Sellers".
// It returns "" when nothing is active.
func (c FilterCriteria) Summary() string {
	var parts []string
	if c.MinPrice != "" || c.MaxPrice != "" {
		var b strings.Builder
		b.WriteString("Price: ")
		switch {
		case c.MinPrice != "" && c.MaxPrice != "":
			fmt.Fprintf(&b, "$%s - $%s", c.MinPrice, c.MaxPrice)
		case c.MinPrice != "":
			fmt.Fprintf(&b, "$%s", c.MinPrice)
		default:
			fmt.Fprintf(&b, "Up to $%s", c.MaxPrice)
		}
		parts = append(parts, b.String())
	}
	if c.MinRating > 0 {
		parts = append(parts, fmt.Sprintf("Rating: %d+ Stars", c.MinRating))
	}
	if c.FeaturedOnly {
		parts = append(parts, "Best Sellers")
	}
	if len(parts) == 0 {
		return ""
	}
	return "Active Filters: " + strings.Join(parts, ", ")
}
