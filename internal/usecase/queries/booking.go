package queries

import (
	"context"
	"time"

	"oasis-backend/internal/domain/booking"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID          uuid.UUID `json:"id"`
	TableNumber string    `json:"table_number"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	GuestCount  int       `json:"guest_count"`
	Note        *string   `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type BookingQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	CheckConflict(ctx context.Context, tableNumber string, slot booking.TimeSlot) (bool, error)
}

type BookingReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	HasOverlap(ctx context.Context, tableNumber string, slot booking.TimeSlot) (bool, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	return q.store.FindByUserID(ctx, userID)
}

func (q *bookingQueriesImpl) CheckConflict(ctx context.Context, tableNumber string, slot booking.TimeSlot) (bool, error) {
	return q.store.HasOverlap(ctx, tableNumber, slot)
}
