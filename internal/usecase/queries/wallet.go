package queries

import (
	"context"
	"time"

	"oasis-backend/internal/pkg/money"

	"github.com/google/uuid"
)

type TransactionView struct {
	ID          uuid.UUID   `json:"id"`
	Amount      money.Money `json:"amount"`
	Kind        string      `json:"type"`
	Description string      `json:"description"`
	Timestamp   time.Time   `json:"timestamp"`
}

type WalletQueries interface {
	// Balance returns zero for an owner without an account row.
	Balance(ctx context.Context, userID uuid.UUID) (money.Money, error)
	// History returns transactions most-recent-first, ties broken by
	// insertion order.
	History(ctx context.Context, userID uuid.UUID) ([]*TransactionView, error)
}

type WalletReadStore interface {
	FindBalance(ctx context.Context, userID uuid.UUID) (money.Money, error)
	FindTransactionsByUserID(ctx context.Context, userID uuid.UUID) ([]*TransactionView, error)
}

type walletQueriesImpl struct {
	store WalletReadStore
}

func NewWalletQueries(store WalletReadStore) WalletQueries {
	return &walletQueriesImpl{store: store}
}

func (q *walletQueriesImpl) Balance(ctx context.Context, userID uuid.UUID) (money.Money, error) {
	return q.store.FindBalance(ctx, userID)
}

func (q *walletQueriesImpl) History(ctx context.Context, userID uuid.UUID) ([]*TransactionView, error) {
	return q.store.FindTransactionsByUserID(ctx, userID)
}
