package response

import (
	"time"

	"oasis-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	TableNumber string    `json:"table_number"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	GuestCount  int       `json:"guest_count"`
	Note        *string   `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateBookingResponse struct {
	ID uuid.UUID `json:"id"`
}

type ConflictCheckResponse struct {
	Conflict bool `json:"conflict"`
}

func FromReservationView(v *queries.ReservationView) *BookingResponse {
	return &BookingResponse{
		ID:          v.ID,
		TableNumber: v.TableNumber,
		StartTime:   v.StartTime,
		EndTime:     v.EndTime,
		GuestCount:  v.GuestCount,
		Note:        v.Note,
		CreatedAt:   v.CreatedAt,
	}
}
