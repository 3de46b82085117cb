package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/postal/cards/internal/core/domain"
	"github.com/postal/cards/internal/core/ports"
	"github.com/postal/cards/internal/core/validation"
)

type CardHandler struct {
	service ports.CardService
	schemas *validation.Registry
}

func NewCardHandler(service ports.CardService, schemas *validation.Registry) *CardHandler {
	return &CardHandler{
		service: service,
		schemas: schemas,
	}
}

func (h *CardHandler) FetchByID(w http.ResponseWriter, r *http.Request) {
	card, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCardID) {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrCardNotFound) {
			// The body is null, not a message, matching fetch semantics.
			writeJSON(w, http.StatusNotFound, nil)
			return
		}
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, card)
}

func (h *CardHandler) FetchList(w http.ResponseWriter, r *http.Request) {
	cards, err := h.service.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

func (h *CardHandler) FetchAllByUserID(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusForbidden, "Missing authentication token.")
		return
	}

	cards, err := h.service.ListByUserID(r.Context(), identity.ID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

func (h *CardHandler) FetchAllByToUserID(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusForbidden, "Missing authentication token.")
		return
	}

	cards, err := h.service.ListByToUserID(r.Context(), identity.ID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

func (h *CardHandler) Store(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := h.schemas.Card.Validate(body); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	card, err := h.service.Store(r.Context(), cardInput(body))
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (h *CardHandler) UpdateByID(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := h.schemas.Card.Validate(body); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	card, err := h.service.UpdateByID(r.Context(), chi.URLParam(r, "id"), cardInput(body))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCardID) {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrCardNotFound) {
			writeJSON(w, http.StatusNotFound, nil)
			return
		}
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (h *CardHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.DeleteByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCardID) {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{Deleted: deleted})
}

func cardInput(body map[string]any) ports.CardInput {
	return ports.CardInput{
		Title:       stringField(body, "title"),
		Description: stringField(body, "description"),
		UserID:      stringField(body, "user_id"),
		ToUserID:    stringField(body, "to_user_id"),
	}
}
