package response

import (
	"time"

	"oasis-backend/internal/pkg/money"
	"oasis-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type BalanceResponse struct {
	Balance money.Money `json:"balance"`
}

type TopUpResponse struct {
	NewBalance money.Money `json:"new_balance"`
}

type TransactionResponse struct {
	ID          uuid.UUID   `json:"id"`
	Amount      money.Money `json:"amount"`
	Kind        string      `json:"type"`
	Description string      `json:"description"`
	Timestamp   time.Time   `json:"timestamp"`
}

func FromTransactionView(v *queries.TransactionView) *TransactionResponse {
	return &TransactionResponse{
		ID:          v.ID,
		Amount:      v.Amount,
		Kind:        v.Kind,
		Description: v.Description,
		Timestamp:   v.Timestamp,
	}
}
