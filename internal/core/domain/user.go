package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Mail           string    `json:"mail"`
	PasswordDigest string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// Identity is the claim set embedded in an auth token. It is the only
// user data trusted downstream once a token has been verified.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Mail     string `json:"mail"`
}

func (u *User) Identity() Identity {
	return Identity{
		ID:       u.ID.String(),
		Username: u.Username,
		Mail:     u.Mail,
	}
}
