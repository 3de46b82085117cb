package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/postal/cards/internal/core/domain"
	"github.com/postal/cards/internal/core/ports"
)

type contextKey string

const (
	identityKey contextKey = "auth_identity"
	rawTokenKey contextKey = "auth_raw_token"
)

// ParseToken extracts the bearer token into the request context without
// verifying it. Handlers behind it verify the token themselves with
// custom error handling.
func ParseToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeMessage(w, http.StatusForbidden, "Missing authentication token.")
			return
		}
		ctx := context.WithValue(r.Context(), rawTokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ParseAndValidateToken extracts and fully verifies the token. An
// invalid or expired token short-circuits with 403 and the wrapped
// handler never runs; on success the decoded identity is attached to
// the request context.
func ParseAndValidateToken(tokens ports.TokenService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeMessage(w, http.StatusForbidden, "Missing authentication token.")
				return
			}

			identity, err := tokens.Verify(token)
			if err != nil {
				switch err {
				case domain.ErrTokenExpired:
					writeMessage(w, http.StatusForbidden, "Token expired.")
				default:
					writeMessage(w, http.StatusForbidden, "Invalid token.")
				}
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func IdentityFromContext(ctx context.Context) (*domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*domain.Identity)
	return identity, ok
}

func RawTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(rawTokenKey).(string)
	return token, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
