package repository

import (
	"context"
	"errors"
	"time"

	"oasis-backend/internal/domain/booking"
	"oasis-backend/internal/infra"
	"oasis-backend/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingRepository is the write side of the reservation store. The
// per-table non-overlap invariant lives in the reservations_no_overlap
// exclusion constraint, so insert and update need no separate conflict
// probe: the constraint rejects an intersecting slot atomically.
type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, res *booking.Reservation) (uuid.UUID, error) {
	const q = `
		INSERT INTO reservations (id, table_number, user_id, during, guest_count, note)
		VALUES ($1, $2, $3, tstzrange($4, $5, '[)'), $6, $7)
		RETURNING id`

	var note pgtype.Text
	if !res.Note().IsEmpty() {
		note = pgtype.Text{String: res.Note().String(), Valid: true}
	}

	var id uuid.UUID
	err := tx.QueryRow(ctx, q,
		res.ID(),
		res.TableNumber(),
		res.UserID(),
		res.TimeSlot().Start(),
		res.TimeSlot().End(),
		res.GuestCount(),
		note,
	).Scan(&id)
	if err != nil {
		if isPgErrCode(err, pgErrCodeExclusionViolation) {
			return uuid.Nil, infra.WrapRepoErr("time slot already booked for this table", err, infra.KindConflict)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}

// FindOwnedForUpdate locks the reservation row for the remainder of the
// transaction. Ownership is part of the predicate: someone else's
// reservation is indistinguishable from a missing one.
func (r *BookingRepository) FindOwnedForUpdate(ctx context.Context, tx db.DBTX, id, userID uuid.UUID) (*booking.Reservation, error) {
	const q = `
		SELECT id, table_number, user_id, lower(during), upper(during), guest_count, note, created_at
		FROM reservations
		WHERE id = $1 AND user_id = $2
		FOR UPDATE`

	var (
		resID       uuid.UUID
		tableNumber string
		ownerID     uuid.UUID
		start, end  time.Time
		guestCount  int
		note        pgtype.Text
		createdAt   time.Time
	)
	err := tx.QueryRow(ctx, q, id, userID).Scan(
		&resID, &tableNumber, &ownerID, &start, &end, &guestCount, &note, &createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has invalid slot", err)
	}

	return booking.ReconstructReservation(
		resID, tableNumber, ownerID, slot, guestCount, booking.NewNote(note.String), createdAt,
	), nil
}

func (r *BookingRepository) Update(ctx context.Context, tx db.DBTX, res *booking.Reservation) error {
	const q = `
		UPDATE reservations
		SET during = tstzrange($2, $3, '[)'), guest_count = $4, note = $5
		WHERE id = $1`

	var note pgtype.Text
	if !res.Note().IsEmpty() {
		note = pgtype.Text{String: res.Note().String(), Valid: true}
	}

	tag, err := tx.Exec(ctx, q,
		res.ID(),
		res.TimeSlot().Start(),
		res.TimeSlot().End(),
		res.GuestCount(),
		note,
	)
	if err != nil {
		if isPgErrCode(err, pgErrCodeExclusionViolation) {
			return infra.WrapRepoErr("rescheduled slot conflicts with another reservation", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *BookingRepository) DeleteOwned(ctx context.Context, tx db.DBTX, id, userID uuid.UUID) error {
	const q = `DELETE FROM reservations WHERE id = $1 AND user_id = $2`

	tag, err := tx.Exec(ctx, q, id, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}
