package handlers

import (
	"errors"
	"net/http"

	"pizzeria-pos/internal/domain/dto"
	"pizzeria-pos/internal/repository"
	"pizzeria-pos/internal/service"
)

type AuthHandler struct {
	auth service.AuthServiceInterface
}

func NewAuthHandler(auth service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.auth.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailTaken):
			writeProblem(w, http.StatusBadRequest, "email_taken", err.Error())
		case errors.Is(err, service.ErrValidation):
			writeProblem(w, http.StatusBadRequest, "bad_request", err.Error())
		default:
			writeProblem(w, http.StatusInternalServerError, "internal_error", "failed to register user")
		}
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.auth.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeProblem(w, http.StatusUnauthorized, "unauthorized", "invalid credentials")
		case errors.Is(err, service.ErrValidation):
			writeProblem(w, http.StatusBadRequest, "bad_request", err.Error())
		default:
			writeProblem(w, http.StatusInternalServerError, "internal_error", "failed to log in")
		}
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
