package readstore

import (
	"context"
	"errors"

	"oasis-backend/internal/infra"
	"oasis-backend/internal/pkg/money"
	"oasis-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TabReadStore struct {
	pool *pgxpool.Pool
}

func NewTabReadStore(pool *pgxpool.Pool) *TabReadStore {
	return &TabReadStore{pool: pool}
}

const tabColumns = `id, user_id, status, total_cents, opened_at, closed_at`

// FindOpenByUserID returns nil without error when the owner has no
// open tab.
func (r *TabReadStore) FindOpenByUserID(ctx context.Context, userID uuid.UUID) (*queries.TabView, error) {
	const q = `
		SELECT ` + tabColumns + `
		FROM tabs
		WHERE user_id = $1 AND status = 'open'`

	view, err := scanTabView(r.pool.QueryRow(ctx, q, userID))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return view, nil
}

func (r *TabReadStore) FindByID(ctx context.Context, tabID uuid.UUID) (*queries.TabView, error) {
	const q = `
		SELECT ` + tabColumns + `
		FROM tabs
		WHERE id = $1`

	return scanTabView(r.pool.QueryRow(ctx, q, tabID))
}

func (r *TabReadStore) FindClosedByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.TabView, error) {
	const q = `
		SELECT ` + tabColumns + `
		FROM tabs
		WHERE user_id = $1 AND status = 'closed'
		ORDER BY opened_at DESC`

	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list closed tabs", err)
	}
	defer rows.Close()

	views := make([]*queries.TabView, 0)
	for rows.Next() {
		view, err := scanTabView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate closed tabs", err)
	}

	return views, nil
}

func scanTabView(row pgx.Row) (*queries.TabView, error) {
	var (
		v          queries.TabView
		totalCents int64
		closedAt   pgtype.Timestamptz
	)
	err := row.Scan(&v.TabID, &v.UserID, &v.Status, &totalCents, &v.OpenedAt, &closedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("tab not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find tab", err)
	}

	v.Total = money.FromCents(totalCents)
	if closedAt.Valid {
		t := closedAt.Time
		v.ClosedAt = &t
	}

	return &v, nil
}
