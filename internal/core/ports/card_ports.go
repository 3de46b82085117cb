package ports

import (
	"context"

	"github.com/postal/cards/internal/core/domain"
)

type CardInput struct {
	Title       string
	Description string
	UserID      string
	ToUserID    string
}

type CardService interface {
	GetByID(ctx context.Context, id string) (*domain.Card, error)
	List(ctx context.Context) ([]domain.Card, error)
	ListByUserID(ctx context.Context, userID string) ([]domain.Card, error)
	ListByToUserID(ctx context.Context, toUserID string) ([]domain.Card, error)
	Store(ctx context.Context, input CardInput) (*domain.Card, error)
	UpdateByID(ctx context.Context, id string, input CardInput) (*domain.Card, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}
