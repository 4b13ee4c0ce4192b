package repository

import (
	"context"
	"errors"
	"time"

	"oasis-backend/internal/domain/tab"
	"oasis-backend/internal/infra"
	"oasis-backend/internal/infra/db"
	"oasis-backend/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// TabRepository is the write side of the tab store. Single-open-tab per
// owner is a partial unique index; the running total is only ever moved
// by atomic in-place increments, never by read-modify-write.
type TabRepository struct{}

func NewTabRepository() *TabRepository {
	return &TabRepository{}
}

func (r *TabRepository) Create(ctx context.Context, tx db.DBTX, t *tab.Tab) (uuid.UUID, error) {
	const q = `
		INSERT INTO tabs (id, user_id, status, total_cents)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, q, t.ID(), t.UserID(), t.Status().String(), t.Total().Cents()).Scan(&id)
	if err != nil {
		if isPgErrCode(err, pgErrCodeUniqueViolation) {
			return uuid.Nil, infra.WrapRepoErr("tab already open for this user", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create tab", err)
	}

	return id, nil
}

// AddToOpenTotal increments the owner's open tab in one statement, so
// concurrent additions serialize on the row and no increment is lost.
// Returns the tab id and the total after the increment.
func (r *TabRepository) AddToOpenTotal(ctx context.Context, tx db.DBTX, userID uuid.UUID, lineTotal money.Money) (uuid.UUID, money.Money, error) {
	const q = `
		UPDATE tabs
		SET total_cents = total_cents + $2
		WHERE user_id = $1 AND status = 'open'
		RETURNING id, total_cents`

	var (
		id         uuid.UUID
		totalCents int64
	)
	err := tx.QueryRow(ctx, q, userID, lineTotal.Cents()).Scan(&id, &totalCents)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, money.Zero(), infra.WrapRepoErr("no open tab", err, infra.KindNotFound)
		}
		return uuid.Nil, money.Zero(), infra.WrapRepoErr("failed to add to tab total", err)
	}

	return id, money.FromCents(totalCents), nil
}

// FindOpenForUpdate locks the owner's open tab for settlement.
func (r *TabRepository) FindOpenForUpdate(ctx context.Context, tx db.DBTX, userID uuid.UUID) (*tab.Tab, error) {
	const q = `
		SELECT id, user_id, status, total_cents, opened_at, closed_at
		FROM tabs
		WHERE user_id = $1 AND status = 'open'
		FOR UPDATE`

	return scanTab(tx.QueryRow(ctx, q, userID))
}

func (r *TabRepository) Close(ctx context.Context, tx db.DBTX, tabID uuid.UUID, closedAt time.Time) error {
	const q = `
		UPDATE tabs
		SET status = 'closed', closed_at = $2
		WHERE id = $1 AND status = 'open'`

	tag, err := tx.Exec(ctx, q, tabID, closedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to close tab", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("no open tab with this id", nil, infra.KindNotFound)
	}

	return nil
}

func scanTab(row pgx.Row) (*tab.Tab, error) {
	var (
		id         uuid.UUID
		userID     uuid.UUID
		status     string
		totalCents int64
		openedAt   time.Time
		closedAt   pgtype.Timestamptz
	)
	err := row.Scan(&id, &userID, &status, &totalCents, &openedAt, &closedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("no open tab", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find tab", err)
	}

	var closed *time.Time
	if closedAt.Valid {
		closed = &closedAt.Time
	}

	return tab.ReconstructTab(
		id, userID, tab.Status(status), money.FromCents(totalCents), openedAt, closed,
	), nil
}
