package http

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"example.com/naturemart/app/internal/domain/currency"
	"example.com/naturemart/app/internal/infra/persistence/memory"
	cartuc "example.com/naturemart/app/internal/usecase/cart"
)

func createCart(t *testing.T, router http.Handler) string {
	t.Helper()
	rec := serve(router, newJSONRequest(http.MethodPost, "/api/v1/cart", nil))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id, ok := decodeBody(t, rec)["session_id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)
	return id
}

func newCartRequest(method, path, sessionID string, body any) *http.Request {
	req := newJSONRequest(method, path, body)
	if sessionID != "" {
		req.Header.Set(CartSessionHeader, sessionID)
	}
	return req
}

func cartItems(t *testing.T, cart map[string]any) []map[string]any {
	t.Helper()
	raw, ok := cart["items"].([]any)
	require.True(t, ok, "items should be an array")
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		require.True(t, ok)
		out = append(out, m)
	}
	return out
}

func TestCreateCart_StartsEmptyInUSD(t *testing.T) {
	router := setupAPI(t)
	sessionID := createCart(t, router)

	rec := serve(router, newCartRequest(http.MethodGet, "/api/v1/cart", sessionID, nil))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	cart := decodeBody(t, rec)
	require.Empty(t, cartItems(t, cart))
	require.Equal(t, float64(0), cart["item_count"])
	require.Equal(t, float64(0), cart["total"])
	require.Equal(t, "USD", cart["currency"])
	require.Equal(t, "0.00", cart["display_total"])
}

func TestAddToCart_Returns201WithCart(t *testing.T) {
	router := setupAPI(t)
	sessionID := createCart(t, router)

	rec := serve(router, newCartRequest(http.MethodPost, "/api/v1/cart/items", sessionID, map[string]any{
		"product_id": "prod1",
		"quantity":   2,
	}))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	cart := decodeBody(t, rec)
	items := cartItems(t, cart)
	require.Len(t, items, 1)
	require.Equal(t, "prod1", items[0]["product_id"])
	require.Equal(t, float64(2), items[0]["quantity"])
	require.Equal(t, float64(2), cart["item_count"])
	require.InDelta(t, 25.98, cart["total"], 1e-9)
}

func TestAddToCart_DefaultQuantityAndMerge(t *testing.T) {
	router := setupAPI(t)
	sessionID := createCart(t, router)

	for i := 0; i < 2; i++ {
		rec := serve(router, newCartRequest(http.MethodPost, "/api/v1/cart/items", sessionID, map[string]any{"product_id": "prod4"}))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}
	rec := serve(router, newCartRequest(http.MethodPost, "/api/v1/cart/items", sessionID, map[string]any{"product_id": "prod9", "quantity": 3}))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	cart := decodeBody(t, rec)
	items := cartItems(t, cart)
	require.Len(t, items, 2)
	require.Equal(t, "prod4", items[0]["product_id"])
	require.Equal(t, float64(2), items[0]["quantity"])
	require.Equal(t, "prod9", items[1]["product_id"])
	require.Equal(t, float64(5), cart["item_count"])
}

func TestAddToCart_Failures(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
	}{
		{name: "Unknown product", body: map[string]any{"product_id": "prod999", "quantity": 1}, wantStatus: http.StatusNotFound},
		{name: "Missing product id", body: map[string]any{"quantity": 1}, wantStatus: http.StatusBadRequest},
		{name: "Zero quantity", body: map[string]any{"product_id": "prod1", "quantity": 0}, wantStatus: http.StatusBadRequest},
		{name: "Negative quantity", body: map[string]any{"product_id": "prod1", "quantity": -2}, wantStatus: http.StatusBadRequest},
		{name: "Quantity above cap", body: map[string]any{"product_id": "prod1", "quantity": 1000}, wantStatus: http.StatusBadRequest},
		{name: "Overflowing quantity", body: map[string]any{"product_id": "prod1", "quantity": math.MaxInt}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupAPI(t)
			sessionID := createCart(t, router)

			rec := serve(router, newCartRequest(http.MethodPost, "/api/v1/cart/items", sessionID, tt.body))
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			rec = serve(router, newCartRequest(http.MethodGet, "/api/v1/cart", sessionID, nil))
			require.Empty(t, cartItems(t, decodeBody(t, rec)))
		})
	}
}

func TestAddToCart_InvalidJSONReturns400(t *testing.T) {
	router := setupAPI(t)
	sessionID := createCart(t, router)

	req := newCartRequest(http.MethodPost, "/api/v1/cart/items", sessionID, "not an object")
	rec := serve(router, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCart_MissingSessionHeaderReturns400(t *testing.T) {
	router := setupAPI(t)

	rec := serve(router, newCartRequest(http.MethodGet, "/api/v1/cart", "", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decodeBody(t, rec)["error"], CartSessionHeader)
}

func TestCart_UnknownSessionReturns404(t *testing.T) {
	router := setupAPI(t)

	rec := serve(router, newCartRequest(http.MethodGet, "/api/v1/cart", "no-such-session", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateCartItem(t *testing.T) {
	router := setupAPI(t)
	sessionID := createCart(t, router)
	serve(router, newCartRequest(http.MethodPost, "/api/v1/cart/items", sessionID, map[string]any{"product_id": "prod1", "quantity": 2}))
	serve(router, newCartRequest(http.MethodPost, "/api/v1/cart/items", sessionID, map[string]any{"product_id": "prod9"}))

	rec := serve(router, newCartRequest(http.MethodPatch, "/api/v1/cart/items/prod9", sessionID, map[string]any{"quantity": 4}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, float64(6), decodeBody(t, rec)["item_count"])

	rec = serve(router, newCartRequest(http.MethodPatch, "/api/v1/cart/items/prod1", sessionID, map[string]any{"quantity": 0}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	cart := decodeBody(t, rec)
	items := cartItems(t, cart)
	require.Len(t, items, 1)
	require.Equal(t, "prod9", items[0]["product_id"])
	require.InDelta(t, 32.0, cart["total"], 1e-9)

	rec = serve(router, newCartRequest(http.MethodPatch, "/api/v1/cart/items/prod9", sessionID, map[string]any{}))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateCartItem_NotInCartIsNoop(t *testing.T) {
	router := setupAPI(t)
	sessionID := createCart(t, router)

	rec := serve(router, newCartRequest(http.MethodPatch, "/api/v1/cart/items/prod1", sessionID, map[string]any{"quantity": 3}))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Empty(t, cartItems(t, decodeBody(t, rec)))
}

func TestRemoveCartItem(t *testing.T) {
	router := setupAPI(t)
	sessionID := createCart(t, router)
	serve(router, newCartRequest(http.MethodPost, "/api/v1/cart/items", sessionID, map[string]any{"product_id": "prod1"}))
	serve(router, newCartRequest(http.MethodPost, "/api/v1/cart/items", sessionID, map[string]any{"product_id": "prod4"}))

	rec := serve(router, newCartRequest(http.MethodDelete, "/api/v1/cart/items/prod1", sessionID, nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	items := cartItems(t, decodeBody(t, rec))
	require.Len(t, items, 1)
	require.Equal(t, "prod4", items[0]["product_id"])

	rec = serve(router, newCartRequest(http.MethodDelete, "/api/v1/cart/items/prod1", sessionID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, cartItems(t, decodeBody(t, rec)), 1)
}

func TestClearCart(t *testing.T) {
	router := setupAPI(t)
	sessionID := createCart(t, router)
	serve(router, newCartRequest(http.MethodPost, "/api/v1/cart/items", sessionID, map[string]any{"product_id": "prod1", "quantity": 3}))
	serve(router, newCartRequest(http.MethodPut, "/api/v1/cart/currency", sessionID, map[string]any{"currency": "GBP"}))

	rec := serve(router, newCartRequest(http.MethodDelete, "/api/v1/cart", sessionID, nil))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	cart := decodeBody(t, rec)
	require.Empty(t, cartItems(t, cart))
	require.Equal(t, float64(0), cart["item_count"])
	require.Equal(t, "GBP", cart["currency"])
}

func TestSetCurrency_ConvertsTotal(t *testing.T) {
	router := setupAPI(t)
	sessionID := createCart(t, router)
	serve(router, newCartRequest(http.MethodPost, "/api/v1/cart/items", sessionID, map[string]any{"product_id": "prod9", "quantity": 2}))

	rec := serve(router, newCartRequest(http.MethodPut, "/api/v1/cart/currency", sessionID, map[string]any{"currency": "eur"}))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	cart := decodeBody(t, rec)
	require.Equal(t, "EUR", cart["currency"])
	require.InDelta(t, 14.72, cart["total"], 1e-9)
	require.Equal(t, "14.72", cart["display_total"])
	require.Equal(t, float64(2), cart["item_count"])

	items := cartItems(t, cart)
	require.Equal(t, 8.0, items[0]["unit_price_usd"])
	require.Equal(t, "7.36", items[0]["display_price"])
}

func TestSetCurrency_UnknownReturns422(t *testing.T) {
	router := setupAPI(t)
	sessionID := createCart(t, router)

	rec := serve(router, newCartRequest(http.MethodPut, "/api/v1/cart/currency", sessionID, map[string]any{"currency": "JPY"}))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	rec = serve(router, newCartRequest(http.MethodGet, "/api/v1/cart", sessionID, nil))
	require.Equal(t, "USD", decodeBody(t, rec)["currency"])
}

func TestDeleteCartSession(t *testing.T) {
	router := setupAPI(t)
	sessionID := createCart(t, router)

	rec := serve(router, newCartRequest(http.MethodDelete, "/api/v1/cart/session", sessionID, nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(router, newCartRequest(http.MethodGet, "/api/v1/cart", sessionID, nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCart_SessionIsolation(t *testing.T) {
	router := setupAPI(t)
	first := createCart(t, router)
	second := createCart(t, router)
	require.NotEqual(t, first, second)

	serve(router, newCartRequest(http.MethodPost, "/api/v1/cart/items", first, map[string]any{"product_id": "prod1", "quantity": 2}))
	serve(router, newCartRequest(http.MethodPost, "/api/v1/cart/items", second, map[string]any{"product_id": "prod11"}))

	rec := serve(router, newCartRequest(http.MethodGet, "/api/v1/cart", first, nil))
	items := cartItems(t, decodeBody(t, rec))
	require.Len(t, items, 1)
	require.Equal(t, "prod1", items[0]["product_id"])

	rec = serve(router, newCartRequest(http.MethodGet, "/api/v1/cart", second, nil))
	items = cartItems(t, decodeBody(t, rec))
	require.Len(t, items, 1)
	require.Equal(t, "prod11", items[0]["product_id"])
}

func TestAddToCart_RepeatedLargeAddsSaturate(t *testing.T) {
	router := setupAPI(t)
	sessionID := createCart(t, router)

	var rec *httptest.ResponseRecorder
	for i := 0; i < 2; i++ {
		rec = serve(router, newCartRequest(http.MethodPost, "/api/v1/cart/items", sessionID, map[string]any{"product_id": "prod1", "quantity": 999}))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	cart := decodeBody(t, rec)
	require.Equal(t, float64(999), cartItems(t, cart)[0]["quantity"])
	require.Equal(t, float64(999), cart["item_count"])
	require.Greater(t, cart["total"], 0.0)
}

func TestUpdateCartItem_AboveCapReturns400(t *testing.T) {
	router := setupAPI(t)
	sessionID := createCart(t, router)
	serve(router, newCartRequest(http.MethodPost, "/api/v1/cart/items", sessionID, map[string]any{"product_id": "prod1"}))

	rec := serve(router, newCartRequest(http.MethodPatch, "/api/v1/cart/items/prod1", sessionID, map[string]any{"quantity": math.MaxInt}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCart_SessionLimitReturns503(t *testing.T) {
	productRepo, err := memory.NewProductRepository(memory.SeedProducts())
	require.NoError(t, err)
	rates := currency.DefaultRates()
	router := NewAPI(Dependencies{
		CartService: cartuc.NewService(memory.NewCartRepository(rates, 1, time.Hour), productRepo),
		Rates:       rates,
	}).Router()

	createCart(t, router)
	rec := serve(router, newJSONRequest(http.MethodPost, "/api/v1/cart", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code, rec.Body.String())
}
