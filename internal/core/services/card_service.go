package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/postal/cards/internal/core/domain"
	"github.com/postal/cards/internal/core/ports"
)

const uniqueIDLength = 10

type CardService struct {
	store ports.DocumentStore
}

func NewCardService(store ports.DocumentStore) ports.CardService {
	return &CardService{store: store}
}

func (s *CardService) GetByID(ctx context.Context, id string) (*domain.Card, error) {
	cardID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidCardID
	}

	doc, err := s.store.FindOne(ctx, collectionCards, ports.Filter{"_id": cardID.String()})
	if err != nil {
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	if doc == nil {
		return nil, domain.ErrCardNotFound
	}
	return cardFromDocument(doc)
}

func (s *CardService) List(ctx context.Context) ([]domain.Card, error) {
	return s.list(ctx, nil)
}

func (s *CardService) ListByUserID(ctx context.Context, userID string) ([]domain.Card, error) {
	return s.list(ctx, ports.Filter{"user_id": userID})
}

func (s *CardService) ListByToUserID(ctx context.Context, toUserID string) ([]domain.Card, error) {
	return s.list(ctx, ports.Filter{"to_user_id": toUserID})
}

func (s *CardService) list(ctx context.Context, filter ports.Filter) ([]domain.Card, error) {
	docs, err := s.store.FindMany(ctx, collectionCards, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	cards := make([]domain.Card, 0, len(docs))
	for _, doc := range docs {
		card, err := cardFromDocument(doc)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *card)
	}
	return cards, nil
}

func (s *CardService) Store(ctx context.Context, input ports.CardInput) (*domain.Card, error) {
	uniqueID, err := s.generateUniqueID(ctx)
	if err != nil {
		return nil, err
	}

	inserted, err := s.store.InsertOne(ctx, collectionCards, ports.Fields{
		"unique_id":   uniqueID,
		"title":       input.Title,
		"description": input.Description,
		"user_id":     input.UserID,
		"to_user_id":  input.ToUserID,
		"created_at":  time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert card: %w", err)
	}
	return cardFromDocument(inserted)
}

func (s *CardService) UpdateByID(ctx context.Context, id string, input ports.CardInput) (*domain.Card, error) {
	cardID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidCardID
	}

	updated, err := s.store.UpdateOne(ctx, collectionCards, ports.Filter{"_id": cardID.String()}, ports.Fields{
		"title":       input.Title,
		"description": input.Description,
		"user_id":     input.UserID,
		"to_user_id":  input.ToUserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}
	if updated == nil {
		return nil, domain.ErrCardNotFound
	}
	return cardFromDocument(updated)
}

func (s *CardService) DeleteByID(ctx context.Context, id string) (bool, error) {
	cardID, err := uuid.Parse(id)
	if err != nil {
		return false, domain.ErrInvalidCardID
	}

	deleted, err := s.store.DeleteOne(ctx, collectionCards, ports.Filter{"_id": cardID.String()})
	if err != nil {
		return false, fmt.Errorf("failed to delete card: %w", err)
	}
	return deleted, nil
}

// generateUniqueID produces a short url-safe id and retries until it is
// unused in the collection.
func (s *CardService) generateUniqueID(ctx context.Context) (string, error) {
	for {
		b := make([]byte, 8)
		if _, err := rand.Read(b); err != nil {
			return "", fmt.Errorf("failed to generate unique id: %w", err)
		}
		uniqueID := base64.RawURLEncoding.EncodeToString(b)[:uniqueIDLength]

		existing, err := s.store.FindOne(ctx, collectionCards, ports.Filter{"unique_id": uniqueID})
		if err != nil {
			return "", fmt.Errorf("failed to check unique id: %w", err)
		}
		if existing == nil {
			return uniqueID, nil
		}
	}
}
