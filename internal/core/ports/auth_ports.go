package ports

import (
	"context"

	"github.com/postal/cards/internal/core/domain"
)

// TokenService issues and verifies signed, time-limited tokens carrying
// a user identity. Verification checks signature and expiry before any
// claim is handed back; no claim is trusted until Verify succeeds.
type TokenService interface {
	Issue(identity domain.Identity) (string, error)
	// Verify returns domain.ErrTokenExpired when the expiry has passed
	// and domain.ErrInvalidToken for a malformed token or bad signature.
	Verify(token string) (*domain.Identity, error)
}

type SignUpInput struct {
	Username string
	Password string
	Mail     string
}

type SignInInput struct {
	Login    string
	Password string
}

type AuthService interface {
	// SignUp returns a token embedding the new user's identity, or
	// domain.ErrUsernameTaken / domain.ErrMailTaken on a duplicate.
	SignUp(ctx context.Context, input SignUpInput) (string, error)
	// SignIn returns domain.ErrInvalidCredentials on any mismatch; it
	// never distinguishes a wrong login from a wrong password.
	SignIn(ctx context.Context, input SignInInput) (string, error)
}
