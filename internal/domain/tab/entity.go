package tab

import (
	"errors"
	"time"

	"oasis-backend/internal/pkg/money"

	"github.com/google/uuid"
)

var ErrNotOpen = errors.New("tab is not open")

// Tab is a running, unsettled bill for one owner. The total only grows
// while the tab is open; Close is terminal.
type Tab struct {
	id       uuid.UUID
	userID   uuid.UUID
	status   Status
	total    money.Money
	openedAt time.Time
	closedAt *time.Time
}

func NewTab(userID uuid.UUID) *Tab {
	return &Tab{
		id:     uuid.New(),
		userID: userID,
		status: StatusOpen,
		total:  money.Zero(),
	}
}

func ReconstructTab(
	id, userID uuid.UUID,
	status Status,
	total money.Money,
	openedAt time.Time,
	closedAt *time.Time,
) *Tab {
	return &Tab{
		id:       id,
		userID:   userID,
		status:   status,
		total:    total,
		openedAt: openedAt,
		closedAt: closedAt,
	}
}

func (t *Tab) IsOpen() bool {
	return t.status == StatusOpen
}

func (t *Tab) Close(now time.Time) error {
	if !t.IsOpen() {
		return ErrNotOpen
	}
	t.status = StatusClosed
	t.closedAt = &now
	return nil
}

func (t *Tab) ID() uuid.UUID        { return t.id }
func (t *Tab) UserID() uuid.UUID    { return t.userID }
func (t *Tab) Status() Status       { return t.status }
func (t *Tab) Total() money.Money   { return t.total }
func (t *Tab) OpenedAt() time.Time  { return t.openedAt }
func (t *Tab) ClosedAt() *time.Time { return t.closedAt }
