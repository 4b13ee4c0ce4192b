//go:build unit

package booking_test

import (
	"testing"
	"time"

	"oasis-backend/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReservation(t *testing.T) *booking.Reservation {
	t.Helper()
	r, err := booking.NewReservation("T5", uuid.New(), slot(t, 14, 15), 4, booking.NewNote("birthday"))
	require.NoError(t, err)
	return r
}

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		r := newReservation(t)
		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, "T5", r.TableNumber())
		assert.Equal(t, 4, r.GuestCount())
		assert.Equal(t, "birthday", r.Note().String())
	})

	t.Run("guest count validation", func(t *testing.T) {
		for _, count := range []int{0, -1} {
			_, err := booking.NewReservation("T5", uuid.New(), slot(t, 14, 15), count, booking.NewNote(""))
			assert.ErrorIs(t, err, booking.ErrInvalidGuestCount)
		}
	})
}

func TestReservationApply(t *testing.T) {
	t.Run("empty change set leaves reservation untouched", func(t *testing.T) {
		r := newReservation(t)
		before := r.TimeSlot()

		var changes booking.ChangeSet
		assert.True(t, changes.IsEmpty())
		require.NoError(t, r.Apply(changes))
		assert.Equal(t, before, r.TimeSlot())
		assert.Equal(t, 4, r.GuestCount())
	})

	t.Run("applies only present fields", func(t *testing.T) {
		r := newReservation(t)
		newSlot := slot(t, 16, 17)
		count := 2

		require.NoError(t, r.Apply(booking.ChangeSet{TimeSlot: &newSlot, GuestCount: &count}))
		assert.Equal(t, newSlot, r.TimeSlot())
		assert.Equal(t, 2, r.GuestCount())
		assert.Equal(t, "birthday", r.Note().String())
	})

	t.Run("rejects non-positive guest count without mutating", func(t *testing.T) {
		r := newReservation(t)
		newSlot := slot(t, 16, 17)
		count := 0

		err := r.Apply(booking.ChangeSet{TimeSlot: &newSlot, GuestCount: &count})
		assert.ErrorIs(t, err, booking.ErrInvalidGuestCount)
		assert.Equal(t, slot(t, 14, 15), r.TimeSlot())
		assert.Equal(t, 4, r.GuestCount())
	})

	t.Run("clears note when empty note present", func(t *testing.T) {
		r := newReservation(t)
		empty := booking.NewNote("")

		require.NoError(t, r.Apply(booking.ChangeSet{Note: &empty}))
		assert.True(t, r.Note().IsEmpty())
	})
}

func TestReconstructReservation(t *testing.T) {
	id := uuid.New()
	userID := uuid.New()
	createdAt := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	r := booking.ReconstructReservation(id, "T2", userID, slot(t, 14, 15), 2, booking.NewNote(""), createdAt)
	assert.Equal(t, id, r.ID())
	assert.Equal(t, userID, r.UserID())
	assert.Equal(t, createdAt, r.CreatedAt())
}
