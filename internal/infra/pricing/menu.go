// Package pricing resolves menu item prices from the menu_items table.
// It backs the pricing port the tab commands consume; prices live here,
// never on the tab itself.
package pricing

import (
	"context"
	"errors"

	"oasis-backend/internal/infra"
	"oasis-backend/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MenuPricing struct {
	pool *pgxpool.Pool
}

func NewMenuPricing(pool *pgxpool.Pool) *MenuPricing {
	return &MenuPricing{pool: pool}
}

func (p *MenuPricing) UnitPrice(ctx context.Context, itemID uuid.UUID) (money.Money, error) {
	const q = `
		SELECT price_cents
		FROM menu_items
		WHERE id = $1 AND available`

	var priceCents int64
	err := p.pool.QueryRow(ctx, q, itemID).Scan(&priceCents)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return money.Zero(), infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return money.Zero(), infra.WrapRepoErr("failed to find menu item price", err)
	}

	return money.FromCents(priceCents), nil
}
