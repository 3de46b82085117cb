package http

import (
	"errors"
	"net/http"

	"github.com/postal/cards/internal/core/domain"
	"github.com/postal/cards/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
	tokens  ports.TokenService
}

func NewUserHandler(service ports.UserService, tokens ports.TokenService) *UserHandler {
	return &UserHandler{
		service: service,
		tokens:  tokens,
	}
}

// FetchByToken runs behind ParseToken only: the token is verified here
// so an invalid one can be answered with this route's own message.
func (h *UserHandler) FetchByToken(w http.ResponseWriter, r *http.Request) {
	raw, ok := RawTokenFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusForbidden, "Missing authentication token.")
		return
	}

	identity, err := h.tokens.Verify(raw)
	if err != nil {
		writeMessage(w, http.StatusForbidden, "Invalid token.")
		return
	}

	user, err := h.service.GetByID(r.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			writeMessage(w, http.StatusNotFound, err.Error())
			return
		}
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, user)
}
