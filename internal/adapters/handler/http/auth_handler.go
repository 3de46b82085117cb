package http

import (
	"errors"
	"net/http"

	"github.com/postal/cards/internal/core/domain"
	"github.com/postal/cards/internal/core/ports"
	"github.com/postal/cards/internal/core/validation"
)

type AuthHandler struct {
	service ports.AuthService
	schemas *validation.Registry
}

func NewAuthHandler(service ports.AuthService, schemas *validation.Registry) *AuthHandler {
	return &AuthHandler{
		service: service,
		schemas: schemas,
	}
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := h.schemas.User.Validate(body); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	token, err := h.service.SignUp(r.Context(), ports.SignUpInput{
		Username: stringField(body, "username"),
		Password: stringField(body, "password"),
		Mail:     stringField(body, "mail"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) || errors.Is(err, domain.ErrMailTaken) {
			writeMessage(w, http.StatusForbidden, err.Error())
			return
		}
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := h.schemas.SignIn.Validate(body); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	token, err := h.service.SignIn(r.Context(), ports.SignInInput{
		Login:    stringField(body, "login"),
		Password: stringField(body, "password"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeMessage(w, http.StatusNotFound, err.Error())
			return
		}
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}
