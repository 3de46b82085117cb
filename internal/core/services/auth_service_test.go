package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postal/cards/internal/adapters/repository/memory"
	"github.com/postal/cards/internal/core/domain"
	"github.com/postal/cards/internal/core/ports"
)

func newAuthFixture() (ports.AuthService, ports.DocumentStore, ports.TokenService) {
	store := memory.NewDocumentStore()
	tokens := NewTokenService([]byte("test-secret"), time.Hour)
	return NewAuthService(store, tokens, NewHasher()), store, tokens
}

func TestSignUpStoresNormalizedUserAndReturnsToken(t *testing.T) {
	t.Parallel()

	auth, store, tokens := newAuthFixture()
	ctx := context.Background()

	token, err := auth.SignUp(ctx, ports.SignUpInput{
		Username: "Alice",
		Password: "secret1",
		Mail:     "ALICE@EX.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	doc, err := store.FindOne(ctx, "users", ports.Filter{"username": "alice"})
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "alice@ex.com", doc["mail"])
	assert.Equal(t, NewHasher().Hash("secret1"), doc["password"])

	identity, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, doc["_id"], identity.ID)
	assert.Equal(t, "alice", identity.Username)
}

func TestSignUpReportsUsernameConflictFirst(t *testing.T) {
	t.Parallel()

	auth, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := auth.SignUp(ctx, ports.SignUpInput{Username: "alice", Password: "secret1", Mail: "alice@ex.com"})
	require.NoError(t, err)

	// Same username AND same mail: the username conflict wins.
	_, err = auth.SignUp(ctx, ports.SignUpInput{Username: "ALICE", Password: "other", Mail: "alice@ex.com"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	// Different username, same mail.
	_, err = auth.SignUp(ctx, ports.SignUpInput{Username: "bob", Password: "other", Mail: "Alice@EX.com"})
	assert.ErrorIs(t, err, domain.ErrMailTaken)
}

func TestSignInByUsernameAndByMail(t *testing.T) {
	t.Parallel()

	auth, _, tokens := newAuthFixture()
	ctx := context.Background()

	_, err := auth.SignUp(ctx, ports.SignUpInput{Username: "alice", Password: "secret1", Mail: "alice@ex.com"})
	require.NoError(t, err)

	token, err := auth.SignIn(ctx, ports.SignInInput{Login: "alice", Password: "secret1"})
	require.NoError(t, err)
	identity, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", identity.Username)

	token, err = auth.SignIn(ctx, ports.SignInInput{Login: "ALICE@EX.com", Password: "secret1"})
	require.NoError(t, err)
	identity, err = tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@ex.com", identity.Mail)
}

func TestSignInFailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	auth, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := auth.SignUp(ctx, ports.SignUpInput{Username: "alice", Password: "secret1", Mail: "alice@ex.com"})
	require.NoError(t, err)

	_, wrongPassword := auth.SignIn(ctx, ports.SignInInput{Login: "alice", Password: "nope1234"})
	_, unknownLogin := auth.SignIn(ctx, ports.SignInInput{Login: "charlie", Password: "secret1"})

	assert.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownLogin, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownLogin.Error())
}
