package request

import (
	"oasis-backend/internal/pkg/money"
)

type TopUpRequest struct {
	Amount      money.Money `json:"amount" binding:"required"`
	Description string      `json:"description,omitempty"`
}
