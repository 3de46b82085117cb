package http

import (
	"encoding/json"
	"net/http"

	"github.com/postal/cards/internal/core/validation"
)

type tokenResponse struct {
	Token string `json:"token"`
}

type deleteResponse struct {
	Deleted bool `json:"deleted"`
}

type validationResponse struct {
	Errors []validation.FieldError `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// writeMessage sends a bare JSON string body, the shape used for auth,
// conflict and not-found outcomes.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, message)
}

func writeValidationErrors(w http.ResponseWriter, errs []validation.FieldError) {
	writeJSON(w, http.StatusBadRequest, validationResponse{Errors: errs})
}

func decodeBody(r *http.Request) (map[string]any, error) {
	defer r.Body.Close()
	body := make(map[string]any)
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}

func stringField(body map[string]any, key string) string {
	if v, ok := body[key].(string); ok {
		return v
	}
	return ""
}
