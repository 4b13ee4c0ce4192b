package readstore

import (
	"context"
	"errors"

	"oasis-backend/internal/domain/booking"
	"oasis-backend/internal/infra"
	"oasis-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	const q = `
		SELECT id, table_number, lower(during), upper(during), guest_count, note, created_at
		FROM reservations
		WHERE user_id = $1
		ORDER BY lower(during)`

	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	views := make([]*queries.ReservationView, 0)
	for rows.Next() {
		var (
			v    queries.ReservationView
			note *string
		)
		if err := rows.Scan(&v.ID, &v.TableNumber, &v.StartTime, &v.EndTime, &v.GuestCount, &note, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		v.Note = note
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}

	return views, nil
}

// HasOverlap asks the same question the exclusion constraint enforces,
// without taking any lock. The answer is advisory: only the insert path
// is authoritative.
func (r *BookingReadStore) HasOverlap(ctx context.Context, tableNumber string, slot booking.TimeSlot) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE table_number = $1
			AND during && tstzrange($2, $3, '[)')
		)`

	var exists bool
	err := r.pool.QueryRow(ctx, q, tableNumber, slot.Start(), slot.End()).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to check reservation overlap", err)
	}

	return exists, nil
}
