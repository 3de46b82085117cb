package services

import (
	"context"
	"fmt"

	"github.com/postal/cards/internal/core/domain"
	"github.com/postal/cards/internal/core/ports"
)

type UserService struct {
	store ports.DocumentStore
}

func NewUserService(store ports.DocumentStore) ports.UserService {
	return &UserService{store: store}
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	doc, err := s.store.FindOne(ctx, collectionUsers, ports.Filter{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if doc == nil {
		return nil, domain.ErrUserNotFound
	}
	return userFromDocument(doc)
}
