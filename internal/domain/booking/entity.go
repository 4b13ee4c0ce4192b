package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidGuestCount = errors.New("guest count must be positive")

// Reservation holds one table for one owner over a half-open time slot.
// The non-overlap invariant per table is enforced at the persistence
// layer by an exclusion constraint; the entity only guards local
// validity (slot ordering, guest count).
type Reservation struct {
	id          uuid.UUID
	tableNumber string
	userID      uuid.UUID
	timeSlot    TimeSlot
	guestCount  int
	note        Note
	createdAt   time.Time
}

func NewReservation(
	tableNumber string,
	userID uuid.UUID,
	slot TimeSlot,
	guestCount int,
	note Note,
) (*Reservation, error) {
	if guestCount <= 0 {
		return nil, ErrInvalidGuestCount
	}

	return &Reservation{
		id:          uuid.New(),
		tableNumber: tableNumber,
		userID:      userID,
		timeSlot:    slot,
		guestCount:  guestCount,
		note:        note,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	tableNumber string,
	userID uuid.UUID,
	timeSlot TimeSlot,
	guestCount int,
	note Note,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		tableNumber: tableNumber,
		userID:      userID,
		timeSlot:    timeSlot,
		guestCount:  guestCount,
		note:        note,
		createdAt:   createdAt,
	}
}

// ChangeSet is an explicit partial update for Reschedule: only present
// fields are applied.
type ChangeSet struct {
	TimeSlot   *TimeSlot
	GuestCount *int
	Note       *Note
}

func (c ChangeSet) IsEmpty() bool {
	return c.TimeSlot == nil && c.GuestCount == nil && c.Note == nil
}

// Apply mutates the reservation in place. Returns ErrInvalidGuestCount
// when the new guest count is not positive; slot validity is guaranteed
// by the TimeSlot constructor.
func (r *Reservation) Apply(changes ChangeSet) error {
	if changes.GuestCount != nil && *changes.GuestCount <= 0 {
		return ErrInvalidGuestCount
	}

	if changes.TimeSlot != nil {
		r.timeSlot = *changes.TimeSlot
	}
	if changes.GuestCount != nil {
		r.guestCount = *changes.GuestCount
	}
	if changes.Note != nil {
		r.note = *changes.Note
	}
	return nil
}

func (r *Reservation) ID() uuid.UUID       { return r.id }
func (r *Reservation) TableNumber() string { return r.tableNumber }
func (r *Reservation) UserID() uuid.UUID   { return r.userID }
func (r *Reservation) TimeSlot() TimeSlot  { return r.timeSlot }
func (r *Reservation) GuestCount() int     { return r.guestCount }
func (r *Reservation) Note() Note          { return r.note }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
