package commands

import (
	"context"

	"oasis-backend/internal/domain/wallet"
	"oasis-backend/internal/infra/db"
	"oasis-backend/internal/pkg/errs"
	"oasis-backend/internal/pkg/money"
	"oasis-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TopUpResult struct {
	NewBalance money.Money
}

type WalletCommands interface {
	TopUp(ctx context.Context, userID uuid.UUID, amount money.Money, description string) (*TopUpResult, error)
}

type walletCommandsImpl struct {
	walletRepo WalletRepository
	pool       *pgxpool.Pool
}

func NewWalletCommands(walletRepo WalletRepository, pool *pgxpool.Pool) WalletCommands {
	return &walletCommandsImpl{
		walletRepo: walletRepo,
		pool:       pool,
	}
}

// TopUp credits the balance and appends the matching ledger entry in
// one transaction. The ledger never shows a credit the balance missed,
// or the reverse.
func (w *walletCommandsImpl) TopUp(ctx context.Context, userID uuid.UUID, amount money.Money, description string) (*TopUpResult, error) {
	txn, err := wallet.NewTopUp(userID, amount, description)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAmount)
	}

	newBalance, err := shared.RunInTx(ctx, w.pool, func(tx db.DBTX) (money.Money, error) {
		balance, upErr := w.walletRepo.TopUp(ctx, tx, userID, amount)
		if upErr != nil {
			return money.Zero(), upErr
		}
		if appendErr := w.walletRepo.AppendTransaction(ctx, tx, txn); appendErr != nil {
			return money.Zero(), appendErr
		}
		return balance, nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &TopUpResult{NewBalance: newBalance}, nil
}
