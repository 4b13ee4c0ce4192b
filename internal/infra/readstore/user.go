package readstore

import (
	"context"
	"errors"

	"oasis-backend/internal/infra"
	"oasis-backend/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthUserView, error) {
	const q = `
		SELECT id, email, password_hash, role
		FROM users
		WHERE email = $1`

	var v queries.AuthUserView
	err := r.pool.QueryRow(ctx, q, email).Scan(&v.ID, &v.Email, &v.PasswordHash, &v.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	return &v, nil
}
