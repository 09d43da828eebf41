package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	domcategory "example.com/naturemart/app/internal/domain/category"
	"example.com/naturemart/app/internal/domain/currency"
	domproduct "example.com/naturemart/app/internal/domain/product"
)

// displayCurrency reads ?currency=, falling back to USD when absent.
func displayCurrency(r *http.Request) (currency.Currency, error) {
	code := r.URL.Query().Get("currency")
	if code == "" {
		return currency.Base, nil
	}
	return currency.Parse(code)
}

// parseListFilter maps query parameters onto a catalog filter. Price bounds
// are passed through untouched; min_rating that is not an integer means any.
func parseListFilter(r *http.Request) (domproduct.ListFilter, error) {
	q := r.URL.Query()
	filter := domproduct.ListFilter{
		Search: q.Get("q"),
		Criteria: domproduct.FilterCriteria{
			MinPrice: q.Get("min_price"),
			MaxPrice: q.Get("max_price"),
		},
	}
	if raw := q.Get("category"); raw != "" && !strings.EqualFold(raw, "all") {
		name, err := domcategory.ParseName(raw)
		if err != nil {
			return domproduct.ListFilter{}, err
		}
		filter.Category = &name
	}
	if raw := q.Get("min_rating"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			filter.Criteria.MinRating = n
		}
	}
	switch strings.ToLower(q.Get("featured")) {
	case "1", "true":
		filter.Criteria.FeaturedOnly = true
	}
	return filter, nil
}

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	cur, err := displayCurrency(r)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	filter, err := parseListFilter(r)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}

	products, err := a.productSvc.List(r.Context(), filter)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}

	resp := make([]map[string]any, 0, len(products))
	for _, p := range products {
		resp = append(resp, a.mapProduct(p, cur))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"data":     resp,
		"count":    len(resp),
		"summary":  filter.Criteria.Summary(),
		"currency": cur,
	})
}

func (a *API) handleFeaturedProducts(w http.ResponseWriter, r *http.Request) {
	cur, err := displayCurrency(r)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	products, err := a.productSvc.Featured(r.Context())
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}

	resp := make([]map[string]any, 0, len(products))
	for _, p := range products {
		resp = append(resp, a.mapProduct(p, cur))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	cur, err := displayCurrency(r)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	p, err := a.productSvc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapProduct(p, cur))
}

func (a *API) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.categorySvc.List(r.Context())
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	resp := make([]map[string]any, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, mapCategory(c))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

func (a *API) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	c, err := a.categorySvc.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCategory(c))
}

func (a *API) handleStorefront(w http.ResponseWriter, r *http.Request) {
	content, err := a.storefrontSvc.Content(r.Context())
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapStorefront(content))
}

func (a *API) handleListCurrencies(w http.ResponseWriter, r *http.Request) {
	resp := make([]map[string]any, 0, len(currency.Supported()))
	for _, c := range currency.Supported() {
		resp = append(resp, map[string]any{
			"code":   c,
			"rate":   a.rates[c],
			"factor": a.rates.Factor(c),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"base": currency.Base, "data": resp})
}
