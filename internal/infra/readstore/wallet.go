package readstore

import (
	"context"
	"errors"

	"oasis-backend/internal/infra"
	"oasis-backend/internal/pkg/money"
	"oasis-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WalletReadStore struct {
	pool *pgxpool.Pool
}

func NewWalletReadStore(pool *pgxpool.Pool) *WalletReadStore {
	return &WalletReadStore{pool: pool}
}

// FindBalance returns zero for an owner that has never touched their
// wallet.
func (r *WalletReadStore) FindBalance(ctx context.Context, userID uuid.UUID) (money.Money, error) {
	const q = `
		SELECT balance_cents
		FROM wallet_accounts
		WHERE user_id = $1`

	var balanceCents int64
	err := r.pool.QueryRow(ctx, q, userID).Scan(&balanceCents)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return money.Zero(), nil
		}
		return money.Zero(), infra.WrapRepoErr("failed to find wallet balance", err)
	}

	return money.FromCents(balanceCents), nil
}

// FindTransactionsByUserID returns the ledger most-recent-first; the
// seq column breaks ties between entries committed in the same instant.
func (r *WalletReadStore) FindTransactionsByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.TransactionView, error) {
	const q = `
		SELECT id, amount_cents, kind, description, created_at
		FROM wallet_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, seq DESC`

	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list wallet transactions", err)
	}
	defer rows.Close()

	views := make([]*queries.TransactionView, 0)
	for rows.Next() {
		var (
			v           queries.TransactionView
			amountCents int64
		)
		if err := rows.Scan(&v.ID, &amountCents, &v.Kind, &v.Description, &v.Timestamp); err != nil {
			return nil, infra.WrapRepoErr("failed to scan wallet transaction", err)
		}
		v.Amount = money.FromCents(amountCents)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate wallet transactions", err)
	}

	return views, nil
}
