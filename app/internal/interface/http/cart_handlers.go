package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"omitempty,gt=0,lte=999"`
}

type updateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required,lte=999"`
}

type setCurrencyRequest struct {
	Currency string `json:"currency" validate:"required"`
}

func (a *API) handleCreateCart(w http.ResponseWriter, r *http.Request) {
	id, err := a.cartSvc.CreateSession(r.Context())
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"session_id": id})
}

func (a *API) handleDeleteCart(w http.ResponseWriter, r *http.Request) {
	if err := a.cartSvc.DeleteSession(r.Context(), getCartSession(r.Context())); err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleGetCart(w http.ResponseWriter, r *http.Request) {
	a.writeCart(w, r, http.StatusOK)
}

func (a *API) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondValidationError(w, err)
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	if err := a.cartSvc.AddToCart(r.Context(), getCartSession(r.Context()), req.ProductID, quantity); err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	a.writeCart(w, r, http.StatusCreated)
}

func (a *API) handleUpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondValidationError(w, err)
		return
	}

	productID := chi.URLParam(r, "productID")
	if err := a.cartSvc.UpdateQuantity(r.Context(), getCartSession(r.Context()), productID, *req.Quantity); err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	a.writeCart(w, r, http.StatusOK)
}

func (a *API) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	if err := a.cartSvc.RemoveFromCart(r.Context(), getCartSession(r.Context()), productID); err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	a.writeCart(w, r, http.StatusOK)
}

func (a *API) handleClearCart(w http.ResponseWriter, r *http.Request) {
	if err := a.cartSvc.ClearCart(r.Context(), getCartSession(r.Context())); err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	a.writeCart(w, r, http.StatusOK)
}

func (a *API) handleSetCurrency(w http.ResponseWriter, r *http.Request) {
	var req setCurrencyRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondValidationError(w, err)
		return
	}

	if err := a.cartSvc.SetCurrency(r.Context(), getCartSession(r.Context()), req.Currency); err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	a.writeCart(w, r, http.StatusOK)
}

func (a *API) writeCart(w http.ResponseWriter, r *http.Request, status int) {
	view, err := a.cartSvc.GetCart(r.Context(), getCartSession(r.Context()))
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, status, mapCart(view))
}
