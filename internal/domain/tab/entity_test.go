//go:build unit

package tab_test

import (
	"testing"
	"time"

	"oasis-backend/internal/domain/tab"
	"oasis-backend/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTab(t *testing.T) {
	userID := uuid.New()
	tb := tab.NewTab(userID)

	assert.NotEqual(t, uuid.Nil, tb.ID())
	assert.Equal(t, userID, tb.UserID())
	assert.Equal(t, tab.StatusOpen, tb.Status())
	assert.True(t, tb.IsOpen())
	assert.True(t, tb.Total().IsZero())
	assert.Nil(t, tb.ClosedAt())
}

func TestReconstructTab(t *testing.T) {
	id := uuid.New()
	userID := uuid.New()
	openedAt := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	closedAt := openedAt.Add(3 * time.Hour)

	tb := tab.ReconstructTab(id, userID, tab.StatusClosed, money.FromDollars(18.25), openedAt, &closedAt)

	assert.Equal(t, id, tb.ID())
	assert.False(t, tb.IsOpen())
	assert.Equal(t, money.FromDollars(18.25), tb.Total())
	require.NotNil(t, tb.ClosedAt())
	assert.Equal(t, closedAt, *tb.ClosedAt())
}

func TestTabClose(t *testing.T) {
	t.Run("close stamps the settlement time", func(t *testing.T) {
		tb := tab.NewTab(uuid.New())
		closedAt := time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC)

		require.NoError(t, tb.Close(closedAt))
		assert.Equal(t, tab.StatusClosed, tb.Status())
		require.NotNil(t, tb.ClosedAt())
		assert.Equal(t, closedAt, *tb.ClosedAt())
	})

	t.Run("close is terminal", func(t *testing.T) {
		tb := tab.NewTab(uuid.New())
		closedAt := time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC)

		require.NoError(t, tb.Close(closedAt))
		assert.ErrorIs(t, tb.Close(closedAt.Add(time.Minute)), tab.ErrNotOpen)
		assert.Equal(t, closedAt, *tb.ClosedAt())
	})
}
