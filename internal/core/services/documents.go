package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/postal/cards/internal/core/domain"
	"github.com/postal/cards/internal/core/ports"
)

const (
	collectionUsers = "users"
	collectionCards = "cards"
)

func docString(doc ports.Document, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}

func docTime(doc ports.Document, key string) time.Time {
	s := docString(doc, key)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func docID(doc ports.Document) (uuid.UUID, error) {
	id, err := uuid.Parse(docString(doc, "_id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("document has no valid _id: %w", err)
	}
	return id, nil
}

func userFromDocument(doc ports.Document) (*domain.User, error) {
	id, err := docID(doc)
	if err != nil {
		return nil, err
	}
	return &domain.User{
		ID:             id,
		Username:       docString(doc, "username"),
		Mail:           docString(doc, "mail"),
		PasswordDigest: docString(doc, "password"),
		CreatedAt:      docTime(doc, "created_at"),
	}, nil
}

func cardFromDocument(doc ports.Document) (*domain.Card, error) {
	id, err := docID(doc)
	if err != nil {
		return nil, err
	}
	userID, _ := uuid.Parse(docString(doc, "user_id"))
	toUserID, _ := uuid.Parse(docString(doc, "to_user_id"))
	return &domain.Card{
		ID:          id,
		UniqueID:    docString(doc, "unique_id"),
		Title:       docString(doc, "title"),
		Description: docString(doc, "description"),
		UserID:      userID,
		ToUserID:    toUserID,
		CreatedAt:   docTime(doc, "created_at"),
	}, nil
}
