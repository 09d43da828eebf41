package http

import "net/http"

type subscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (a *API) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondValidationError(w, err)
		return
	}

	sub, err := a.newsletterSvc.Subscribe(r.Context(), req.Email)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"email":   sub.Email,
		"message": "Thank you for subscribing!",
	})
}
