package repository

import (
	"context"
	"errors"

	"oasis-backend/internal/domain/wallet"
	"oasis-backend/internal/infra"
	"oasis-backend/internal/infra/db"
	"oasis-backend/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepository is the write side of the wallet ledger. Balances are
// moved exclusively by the two conditional statements below; every call
// site pairs the balance change with AppendTransaction inside the same
// transaction.
type WalletRepository struct{}

func NewWalletRepository() *WalletRepository {
	return &WalletRepository{}
}

// TopUp creates the account on first use and increments the balance in
// a single upsert. Returns the balance after the increment.
func (r *WalletRepository) TopUp(ctx context.Context, tx db.DBTX, userID uuid.UUID, amount money.Money) (money.Money, error) {
	const q = `
		INSERT INTO wallet_accounts (user_id, balance_cents)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET balance_cents = wallet_accounts.balance_cents + EXCLUDED.balance_cents
		RETURNING balance_cents`

	var balanceCents int64
	err := tx.QueryRow(ctx, q, userID, amount.Cents()).Scan(&balanceCents)
	if err != nil {
		return money.Zero(), infra.WrapRepoErr("failed to top up wallet", err)
	}

	return money.FromCents(balanceCents), nil
}

// Debit decrements the balance only when it still covers the amount.
// The funds check and the decrement are one statement, so the check
// cannot go stale between read and write.
func (r *WalletRepository) Debit(ctx context.Context, tx db.DBTX, userID uuid.UUID, amount money.Money) (money.Money, error) {
	const q = `
		UPDATE wallet_accounts
		SET balance_cents = balance_cents - $2
		WHERE user_id = $1 AND balance_cents >= $2
		RETURNING balance_cents`

	var balanceCents int64
	err := tx.QueryRow(ctx, q, userID, amount.Cents()).Scan(&balanceCents)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return money.Zero(), infra.WrapRepoErr("insufficient wallet balance", err, infra.KindInsufficientFunds)
		}
		return money.Zero(), infra.WrapRepoErr("failed to debit wallet", err)
	}

	return money.FromCents(balanceCents), nil
}

func (r *WalletRepository) AppendTransaction(ctx context.Context, tx db.DBTX, t *wallet.Transaction) error {
	const q = `
		INSERT INTO wallet_transactions (id, user_id, amount_cents, kind, description)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, q, t.ID, t.UserID, t.Amount.Cents(), t.Kind.String(), t.Description)
	if err != nil {
		return infra.WrapRepoErr("failed to append wallet transaction", err)
	}

	return nil
}
