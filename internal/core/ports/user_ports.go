package ports

import (
	"context"

	"github.com/postal/cards/internal/core/domain"
)

type UserService interface {
	// GetByID returns domain.ErrUserNotFound when no user matches.
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
