package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postal/cards/internal/adapters/repository/memory"
	"github.com/postal/cards/internal/core/domain"
	"github.com/postal/cards/internal/core/services"
	"github.com/postal/cards/internal/core/validation"
)

func setupTestHandler() http.Handler {
	store := memory.NewDocumentStore()
	tokens := services.NewTokenService([]byte("test-secret"), time.Hour)
	hasher := services.NewHasher()
	schemas := validation.NewRegistry()

	return NewHandler(
		NewAuthHandler(services.NewAuthService(store, tokens, hasher), schemas),
		NewUserHandler(services.NewUserService(store), tokens),
		NewCardHandler(services.NewCardService(store), schemas),
		tokens,
	)
}

func doJSON(t *testing.T, handler http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func signUp(t *testing.T, handler http.Handler, username, password, mail string) string {
	t.Helper()

	w := doJSON(t, handler, http.MethodPost, "/sign-up", "", map[string]any{
		"username": username,
		"password": password,
		"mail":     mail,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}

func TestSignUpReturnsToken(t *testing.T) {
	t.Parallel()

	handler := setupTestHandler()
	token := signUp(t, handler, "Alice", "secret1", "ALICE@EX.com")
	assert.NotEmpty(t, token)
}

func TestSignUpValidationErrors(t *testing.T) {
	t.Parallel()

	handler := setupTestHandler()
	w := doJSON(t, handler, http.MethodPost, "/sign-up", "", map[string]any{
		"username": "x",
		"password": "",
		"mail":     "nope",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors []validation.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 3)
	assert.Equal(t, "username", resp.Errors[0].Field)
	assert.Equal(t, "password", resp.Errors[1].Field)
	assert.Equal(t, "mail", resp.Errors[2].Field)
}

func TestSignUpDuplicateUsername(t *testing.T) {
	t.Parallel()

	handler := setupTestHandler()
	signUp(t, handler, "alice", "secret1", "alice@ex.com")

	w := doJSON(t, handler, http.MethodPost, "/sign-up", "", map[string]any{
		"username": "ALICE",
		"password": "secret2",
		"mail":     "other@ex.com",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "username")
}

func TestSignInWrongPassword(t *testing.T) {
	t.Parallel()

	handler := setupTestHandler()
	signUp(t, handler, "alice", "secret1", "alice@ex.com")

	w := doJSON(t, handler, http.MethodPost, "/sign-in", "", map[string]any{
		"login":    "alice",
		"password": "wrong123",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "invalid login or password")
}

func TestSignInByMail(t *testing.T) {
	t.Parallel()

	handler := setupTestHandler()
	signUp(t, handler, "alice", "secret1", "alice@ex.com")

	w := doJSON(t, handler, http.MethodPost, "/sign-in", "", map[string]any{
		"login":    "ALICE@EX.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])
}

func TestCardRoutesRequireToken(t *testing.T) {
	t.Parallel()

	handler := setupTestHandler()

	w := doJSON(t, handler, http.MethodGet, "/fetch-list", "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, handler, http.MethodGet, "/fetch-list", "not.a.jwt", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token.")
}

func TestExpiredTokenIsForbidden(t *testing.T) {
	t.Parallel()

	handler := setupTestHandler()
	expired := services.NewTokenService([]byte("test-secret"), -1*time.Minute)

	token, err := expired.Issue(domain.Identity{ID: uuid.New().String(), Username: "alice", Mail: "alice@ex.com"})
	require.NoError(t, err)

	w := doJSON(t, handler, http.MethodGet, "/fetch-list", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired.")
}

func TestStoreCardValidation(t *testing.T) {
	t.Parallel()

	handler := setupTestHandler()
	token := signUp(t, handler, "alice", "secret1", "alice@ex.com")

	w := doJSON(t, handler, http.MethodPost, "/store", token, map[string]any{
		"title":       "",
		"description": "hi",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors []validation.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, validation.FieldError{Field: "title", Message: "cannot be empty"}, resp.Errors[0])
}

func TestStoreFetchUpdateDeleteCard(t *testing.T) {
	t.Parallel()

	handler := setupTestHandler()
	alice := signUp(t, handler, "alice", "secret1", "alice@ex.com")

	w := doJSON(t, handler, http.MethodPost, "/store", alice, map[string]any{
		"title":       "hello",
		"description": "a card",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var card map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &card))
	id, ok := card["id"].(string)
	require.True(t, ok)

	w = doJSON(t, handler, http.MethodGet, "/fetch-by-id-"+id, alice, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, handler, http.MethodPatch, "/update-by-id-"+id, alice, map[string]any{
		"title":       "updated",
		"description": "new text",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "updated", updated["title"])

	w = doJSON(t, handler, http.MethodDelete, "/delete-by-id-"+id, alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted":true}`, w.Body.String())

	w = doJSON(t, handler, http.MethodGet, "/fetch-by-id-"+id, alice, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "null\n", w.Body.String())
}

func TestFetchByIDNotFoundReturnsNull(t *testing.T) {
	t.Parallel()

	handler := setupTestHandler()
	token := signUp(t, handler, "alice", "secret1", "alice@ex.com")

	w := doJSON(t, handler, http.MethodGet, "/fetch-by-id-00000000-0000-0000-0000-000000000000", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "null\n", w.Body.String())
}

func TestFetchByToken(t *testing.T) {
	t.Parallel()

	handler := setupTestHandler()
	token := signUp(t, handler, "Alice", "secret1", "ALICE@EX.com")

	w := doJSON(t, handler, http.MethodGet, "/fetch-by-token", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var user map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "alice@ex.com", user["mail"])
	assert.NotContains(t, user, "password")

	w = doJSON(t, handler, http.MethodGet, "/fetch-by-token", "garbage", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token.")
}
