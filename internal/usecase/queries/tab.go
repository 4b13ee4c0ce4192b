package queries

import (
	"context"
	"time"

	"oasis-backend/internal/infra"
	"oasis-backend/internal/pkg/errs"
	"oasis-backend/internal/pkg/money"

	"github.com/google/uuid"
)

var ErrTabNotFound = errs.New("tab not found")

type TabView struct {
	TabID    uuid.UUID   `json:"tab_id"`
	UserID   uuid.UUID   `json:"user_id"`
	Status   string      `json:"status"`
	Total    money.Money `json:"total"`
	OpenedAt time.Time   `json:"opened_at"`
	ClosedAt *time.Time  `json:"closed_at,omitempty"`
}

type TabQueries interface {
	// GetOpen returns nil (no error) when the owner has no open tab.
	GetOpen(ctx context.Context, userID uuid.UUID) (*TabView, error)
	GetStatus(ctx context.Context, tabID uuid.UUID) (*TabView, error)
	// History returns closed tabs, most-recently-opened first.
	History(ctx context.Context, userID uuid.UUID) ([]*TabView, error)
}

type TabReadStore interface {
	FindOpenByUserID(ctx context.Context, userID uuid.UUID) (*TabView, error)
	FindByID(ctx context.Context, tabID uuid.UUID) (*TabView, error)
	FindClosedByUserID(ctx context.Context, userID uuid.UUID) ([]*TabView, error)
}

type tabQueriesImpl struct {
	store TabReadStore
}

func NewTabQueries(store TabReadStore) TabQueries {
	return &tabQueriesImpl{store: store}
}

func (q *tabQueriesImpl) GetOpen(ctx context.Context, userID uuid.UUID) (*TabView, error) {
	return q.store.FindOpenByUserID(ctx, userID)
}

func (q *tabQueriesImpl) GetStatus(ctx context.Context, tabID uuid.UUID) (*TabView, error) {
	view, err := q.store.FindByID(ctx, tabID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrTabNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *tabQueriesImpl) History(ctx context.Context, userID uuid.UUID) ([]*TabView, error) {
	return q.store.FindClosedByUserID(ctx, userID)
}
