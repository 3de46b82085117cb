package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/postal/cards/internal/core/domain"
	"github.com/postal/cards/internal/core/ports"
	"github.com/postal/cards/internal/core/validation"
)

type AuthService struct {
	store  ports.DocumentStore
	tokens ports.TokenService
	hasher *Hasher
}

func NewAuthService(store ports.DocumentStore, tokens ports.TokenService, hasher *Hasher) ports.AuthService {
	return &AuthService{
		store:  store,
		tokens: tokens,
		hasher: hasher,
	}
}

// SignUp creates a user and returns a token for it. The two duplicate
// checks run sequentially and the first hit wins: a taken username is
// reported even when the mail is taken too. The checks are not isolated
// from concurrent sign-ups; the store enforces no uniqueness.
func (s *AuthService) SignUp(ctx context.Context, input ports.SignUpInput) (string, error) {
	username := strings.ToLower(input.Username)
	mail := strings.ToLower(input.Mail)

	existing, err := s.store.FindOne(ctx, collectionUsers, ports.Filter{"username": username})
	if err != nil {
		return "", fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return "", domain.ErrUsernameTaken
	}

	existing, err = s.store.FindOne(ctx, collectionUsers, ports.Filter{"mail": mail})
	if err != nil {
		return "", fmt.Errorf("failed to check mail: %w", err)
	}
	if existing != nil {
		return "", domain.ErrMailTaken
	}

	inserted, err := s.store.InsertOne(ctx, collectionUsers, ports.Fields{
		"username":   username,
		"password":   s.hasher.Hash(input.Password),
		"mail":       mail,
		"created_at": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return "", fmt.Errorf("failed to insert user: %w", err)
	}

	user, err := userFromDocument(inserted)
	if err != nil {
		return "", err
	}
	return s.tokens.Issue(user.Identity())
}

// SignIn matches the login against the mail field when it is
// email-shaped and against the username otherwise, always combined with
// the password digest. Any mismatch yields the same error so the
// response cannot reveal which part was wrong.
func (s *AuthService) SignIn(ctx context.Context, input ports.SignInInput) (string, error) {
	login := strings.ToLower(input.Login)

	filter := ports.Filter{"password": s.hasher.Hash(input.Password)}
	if validation.IsEmail(input.Login) {
		filter["mail"] = login
	} else {
		filter["username"] = login
	}

	doc, err := s.store.FindOne(ctx, collectionUsers, filter)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if doc == nil {
		return "", domain.ErrInvalidCredentials
	}

	user, err := userFromDocument(doc)
	if err != nil {
		return "", err
	}
	return s.tokens.Issue(user.Identity())
}
