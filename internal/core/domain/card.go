package domain

import (
	"time"

	"github.com/google/uuid"
)

type Card struct {
	ID          uuid.UUID `json:"id"`
	UniqueID    string    `json:"unique_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UserID      uuid.UUID `json:"user_id"`
	ToUserID    uuid.UUID `json:"to_user_id"`
	CreatedAt   time.Time `json:"created_at"`
}
