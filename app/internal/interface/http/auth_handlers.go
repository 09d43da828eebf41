package http

import (
	"net/http"

	authuc "example.com/naturemart/app/internal/usecase/auth"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type signUpRequest struct {
	FullName        string `json:"full_name" validate:"required,max=120"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

func (a *API) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondValidationError(w, err)
		return
	}

	result, err := a.authSvc.SignUp(r.Context(), authuc.SignUpInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"token": result.Token,
		"user":  mapUser(result.User),
	})
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondValidationError(w, err)
		return
	}

	result, err := a.authSvc.Login(r.Context(), authuc.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": result.Token,
		"user":  mapUser(result.User),
	})
}

func (a *API) handleMe(w http.ResponseWriter, r *http.Request) {
	user := getAuthUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

	u, err := a.authSvc.Me(r.Context(), user.UserID)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapUser(u))
}
