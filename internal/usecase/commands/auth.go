package commands

import (
	"context"

	"oasis-backend/internal/infra"
	"oasis-backend/internal/pkg/errs"
	"oasis-backend/internal/pkg/jwt"
	"oasis-backend/internal/pkg/password"
	"oasis-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResult struct {
	Token  string
	UserID uuid.UUID
	Role   string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	users      queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(users queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		users:      users,
		jwtService: jwtService,
	}
}

// Login returns the same error for an unknown email and a wrong
// password, so the response does not leak which accounts exist.
func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	u, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(u.PasswordHash, plainPassword); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(u.ID, u.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Token:  token,
		UserID: u.ID,
		Role:   u.Role,
	}, nil
}
