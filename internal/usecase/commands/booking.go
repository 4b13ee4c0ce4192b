package commands

import (
	"context"
	"errors"
	"time"

	"oasis-backend/internal/domain/booking"
	"oasis-backend/internal/infra"
	"oasis-backend/internal/infra/db"
	"oasis-backend/internal/pkg/errs"
	"oasis-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreateBookingParams struct {
	TableNumber string
	UserID      uuid.UUID
	StartTime   time.Time
	EndTime     time.Time
	GuestCount  int
	Note        *string
}

// RescheduleParams applies only the fields that are present; absent
// fields leave the reservation untouched.
type RescheduleParams struct {
	StartTime  *time.Time
	EndTime    *time.Time
	GuestCount *int
	Note       *string
}

type BookingCommands interface {
	Create(ctx context.Context, params CreateBookingParams) (uuid.UUID, error)
	Cancel(ctx context.Context, id, userID uuid.UUID) error
	Reschedule(ctx context.Context, id, userID uuid.UUID, params RescheduleParams) error
}

type bookingCommandsImpl struct {
	repo BookingRepository
	pool *pgxpool.Pool
}

func NewBookingCommands(repo BookingRepository, pool *pgxpool.Pool) BookingCommands {
	return &bookingCommandsImpl{
		repo: repo,
		pool: pool,
	}
}

// Create inserts the reservation under the per-table exclusion
// constraint, so the overlap check and the insert are one atomic unit:
// two concurrent requests for the same slot cannot both pass.
func (b *bookingCommandsImpl) Create(ctx context.Context, params CreateBookingParams) (uuid.UUID, error) {
	slot, err := booking.NewTimeSlot(params.StartTime, params.EndTime)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidInterval)
	}

	note := booking.NewNote("")
	if params.Note != nil {
		note = booking.NewNote(*params.Note)
	}

	reservation, err := booking.NewReservation(params.TableNumber, params.UserID, slot, params.GuestCount, note)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidGuestCount)
	}

	id, err := shared.RunInTx(ctx, b.pool, func(tx db.DBTX) (uuid.UUID, error) {
		return b.repo.Create(ctx, tx, reservation)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return uuid.Nil, errs.Mark(err, ErrBookingConflict)
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return id, nil
}

func (b *bookingCommandsImpl) Cancel(ctx context.Context, id, userID uuid.UUID) error {
	_, err := shared.RunInTx(ctx, b.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, b.repo.DeleteOwned(ctx, tx, id, userID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrBookingNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}

// Reschedule re-runs the non-overlap check: the update fires the same
// exclusion constraint as create, inside the transaction that holds the
// row lock, so a reschedule can never smuggle in an overlapping slot.
func (b *bookingCommandsImpl) Reschedule(ctx context.Context, id, userID uuid.UUID, params RescheduleParams) error {
	changes, err := b.buildChangeSet(params)
	if err != nil {
		return err
	}

	_, err = shared.RunInTx(ctx, b.pool, func(tx db.DBTX) (struct{}, error) {
		reservation, findErr := b.repo.FindOwnedForUpdate(ctx, tx, id, userID)
		if findErr != nil {
			return struct{}{}, findErr
		}

		if applyErr := reservation.Apply(changes); applyErr != nil {
			return struct{}{}, errs.Mark(applyErr, ErrInvalidGuestCount)
		}

		return struct{}{}, b.repo.Update(ctx, tx, reservation)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidGuestCount):
			return err
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, ErrBookingNotFound)
		case infra.IsKind(err, infra.KindConflict):
			return errs.Mark(err, ErrBookingConflict)
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	return nil
}

func (b *bookingCommandsImpl) buildChangeSet(params RescheduleParams) (booking.ChangeSet, error) {
	var changes booking.ChangeSet

	// A partial interval (only one endpoint supplied) is malformed.
	if (params.StartTime == nil) != (params.EndTime == nil) {
		return changes, ErrInvalidInterval
	}
	if params.StartTime != nil {
		slot, err := booking.NewTimeSlot(*params.StartTime, *params.EndTime)
		if err != nil {
			return changes, errs.Mark(err, ErrInvalidInterval)
		}
		changes.TimeSlot = &slot
	}
	if params.GuestCount != nil {
		changes.GuestCount = params.GuestCount
	}
	if params.Note != nil {
		note := booking.NewNote(*params.Note)
		changes.Note = &note
	}

	return changes, nil
}
