package response

import (
	"time"

	"oasis-backend/internal/pkg/money"
	"oasis-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type TabResponse struct {
	TabID    uuid.UUID   `json:"tab_id"`
	Status   string      `json:"status"`
	Total    money.Money `json:"total"`
	OpenedAt time.Time   `json:"opened_at"`
	ClosedAt *time.Time  `json:"closed_at,omitempty"`
}

type OpenTabResponse struct {
	TabID uuid.UUID `json:"tab_id"`
}

type AddItemResponse struct {
	NewTotal money.Money `json:"new_total"`
}

type CloseTabResponse struct {
	FinalTotal money.Money `json:"final_total"`
	NewBalance money.Money `json:"new_balance"`
}

func FromTabView(v *queries.TabView) *TabResponse {
	return &TabResponse{
		TabID:    v.TabID,
		Status:   v.Status,
		Total:    v.Total,
		OpenedAt: v.OpenedAt,
		ClosedAt: v.ClosedAt,
	}
}
