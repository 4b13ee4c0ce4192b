package commands

import (
	"context"

	"oasis-backend/internal/domain/tab"
	"oasis-backend/internal/domain/wallet"
	"oasis-backend/internal/infra"
	"oasis-backend/internal/infra/db"
	"oasis-backend/internal/pkg/clock"
	"oasis-backend/internal/pkg/errs"
	"oasis-backend/internal/pkg/money"
	"oasis-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const settlementDescription = "Tab settlement"

type SettlementResult struct {
	FinalTotal money.Money
	NewBalance money.Money
}

type TabCommands interface {
	Open(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	AddItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (money.Money, error)
	Close(ctx context.Context, userID uuid.UUID) (*SettlementResult, error)
}

type tabCommandsImpl struct {
	tabRepo    TabRepository
	walletRepo WalletRepository
	oracle     PricingOracle
	pool       *pgxpool.Pool
	clock      clock.Clock
}

func NewTabCommands(
	tabRepo TabRepository,
	walletRepo WalletRepository,
	oracle PricingOracle,
	pool *pgxpool.Pool,
	clock clock.Clock,
) TabCommands {
	return &tabCommandsImpl{
		tabRepo:    tabRepo,
		walletRepo: walletRepo,
		oracle:     oracle,
		pool:       pool,
		clock:      clock,
	}
}

// Open relies on the partial unique index over open tabs: a second open
// for the same owner fails at insert, whatever the interleaving.
func (t *tabCommandsImpl) Open(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	newTab := tab.NewTab(userID)

	id, err := shared.RunInTx(ctx, t.pool, func(tx db.DBTX) (uuid.UUID, error) {
		return t.tabRepo.Create(ctx, tx, newTab)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, ErrTabAlreadyOpen)
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return id, nil
}

// AddItem prices the line through the oracle, then increments the open
// tab in one statement. Concurrent calls serialize on the tab row; no
// increment is lost.
func (t *tabCommandsImpl) AddItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (money.Money, error) {
	if quantity <= 0 {
		return money.Zero(), ErrInvalidQuantity
	}

	unitPrice, err := t.oracle.UnitPrice(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return money.Zero(), errs.Mark(err, ErrItemNotFound)
		}
		return money.Zero(), errs.Mark(err, ErrDatabaseOperationFailed)
	}

	lineTotal := unitPrice.MulQty(quantity)

	newTotal, err := shared.RunInTx(ctx, t.pool, func(tx db.DBTX) (money.Money, error) {
		_, total, addErr := t.tabRepo.AddToOpenTotal(ctx, tx, userID, lineTotal)
		return total, addErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return money.Zero(), errs.Mark(err, ErrNoOpenTab)
		}
		return money.Zero(), errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return newTotal, nil
}

// Close settles the tab in one atomic unit: lock the tab, debit the
// wallet with the funds check re-run at commit time, append the ledger
// entry, mark the tab closed. Any failure rolls back every effect, so
// the caller never sees a debited wallet with a still-open tab.
func (t *tabCommandsImpl) Close(ctx context.Context, userID uuid.UUID) (*SettlementResult, error) {
	result, err := shared.WithDefaultRetry(ctx, t.pool, func(tx db.DBTX) (*SettlementResult, error) {
		openTab, findErr := t.tabRepo.FindOpenForUpdate(ctx, tx, userID)
		if findErr != nil {
			return nil, findErr
		}

		total := openTab.Total()

		// Zero-amount settlement moves no money and writes no ledger
		// entry; the tab still closes.
		newBalance := money.Zero()
		if total.IsPositive() {
			balance, debitErr := t.walletRepo.Debit(ctx, tx, userID, total)
			if debitErr != nil {
				return nil, debitErr
			}
			newBalance = balance

			deduction, txnErr := wallet.NewDeduction(userID, total, settlementDescription)
			if txnErr != nil {
				return nil, txnErr
			}
			if appendErr := t.walletRepo.AppendTransaction(ctx, tx, deduction); appendErr != nil {
				return nil, appendErr
			}
		} else {
			balance, topErr := t.walletRepo.TopUp(ctx, tx, userID, money.Zero())
			if topErr != nil {
				return nil, topErr
			}
			newBalance = balance
		}

		if closeErr := openTab.Close(t.clock.Now()); closeErr != nil {
			return nil, closeErr
		}
		if closeErr := t.tabRepo.Close(ctx, tx, openTab.ID(), *openTab.ClosedAt()); closeErr != nil {
			return nil, closeErr
		}

		return &SettlementResult{
			FinalTotal: total,
			NewBalance: newBalance,
		}, nil
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, ErrNoOpenTab)
		case infra.IsKind(err, infra.KindInsufficientFunds):
			return nil, errs.Mark(err, ErrInsufficientFunds)
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	return result, nil
}
