package model

import (
	"context"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a stored user. PasswordHash is a salted bcrypt digest,
// never the plaintext password.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
}
