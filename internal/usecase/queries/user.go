package queries

import (
	"context"

	"github.com/google/uuid"
)

type AuthUserView struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
}

type UserReadStore interface {
	FindByEmail(ctx context.Context, email string) (*AuthUserView, error)
}
