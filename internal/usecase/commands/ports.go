package commands

import (
	"context"
	"time"

	"oasis-backend/internal/domain/booking"
	"oasis-backend/internal/domain/tab"
	"oasis-backend/internal/domain/wallet"
	"oasis-backend/internal/infra/db"
	"oasis-backend/internal/pkg/money"

	"github.com/google/uuid"
)

// Write-side ports. Repositories take the transaction handle explicitly
// so every atomic unit is scoped to the request that opened it.

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *booking.Reservation) (uuid.UUID, error)
	FindOwnedForUpdate(ctx context.Context, tx db.DBTX, id, userID uuid.UUID) (*booking.Reservation, error)
	Update(ctx context.Context, tx db.DBTX, res *booking.Reservation) error
	DeleteOwned(ctx context.Context, tx db.DBTX, id, userID uuid.UUID) error
}

type TabRepository interface {
	Create(ctx context.Context, tx db.DBTX, t *tab.Tab) (uuid.UUID, error)
	AddToOpenTotal(ctx context.Context, tx db.DBTX, userID uuid.UUID, lineTotal money.Money) (uuid.UUID, money.Money, error)
	FindOpenForUpdate(ctx context.Context, tx db.DBTX, userID uuid.UUID) (*tab.Tab, error)
	Close(ctx context.Context, tx db.DBTX, tabID uuid.UUID, closedAt time.Time) error
}

type WalletRepository interface {
	TopUp(ctx context.Context, tx db.DBTX, userID uuid.UUID, amount money.Money) (money.Money, error)
	Debit(ctx context.Context, tx db.DBTX, userID uuid.UUID, amount money.Money) (money.Money, error)
	AppendTransaction(ctx context.Context, tx db.DBTX, t *wallet.Transaction) error
}

// PricingOracle resolves an item identifier to its current chargeable
// unit price. It is an external collaborator: the tab ledger never
// stores prices itself.
type PricingOracle interface {
	UnitPrice(ctx context.Context, itemID uuid.UUID) (money.Money, error)
}
