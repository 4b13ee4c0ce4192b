package request

import (
	"strings"
	"time"

	"oasis-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	TableNumber string    `json:"table_number" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	GuestCount  int       `json:"guest_count" binding:"required"`
	Note        *string   `json:"note,omitempty"`
}

func (r CreateBookingRequest) ToParams(userID uuid.UUID) commands.CreateBookingParams {
	return commands.CreateBookingParams{
		TableNumber: strings.TrimSpace(r.TableNumber),
		UserID:      userID,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		GuestCount:  r.GuestCount,
		Note:        r.Note,
	}
}

// RescheduleBookingRequest carries only the fields the caller wants to
// change; absent fields leave the reservation as is.
type RescheduleBookingRequest struct {
	StartTime  *time.Time `json:"start_time,omitempty"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	GuestCount *int       `json:"guest_count,omitempty"`
	Note       *string    `json:"note,omitempty"`
}

func (r RescheduleBookingRequest) ToParams() commands.RescheduleParams {
	return commands.RescheduleParams{
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		GuestCount: r.GuestCount,
		Note:       r.Note,
	}
}
