package wallet

import (
	"errors"
	"time"

	"oasis-backend/internal/pkg/money"

	"github.com/google/uuid"
)

var ErrInvalidAmount = errors.New("amount must be positive")

type Kind string

const (
	KindTopUp     Kind = "topup"
	KindDeduction Kind = "deduction"
)

func (k Kind) String() string {
	return string(k)
}

// Transaction is one append-only ledger entry. Every balance change is
// paired with exactly one Transaction committed in the same atomic unit.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      money.Money
	Kind        Kind
	Description string
	CreatedAt   time.Time
}

func NewTopUp(userID uuid.UUID, amount money.Money, description string) (*Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if description == "" {
		description = "Top-up"
	}
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Kind:        KindTopUp,
		Description: description,
	}, nil
}

func NewDeduction(userID uuid.UUID, amount money.Money, description string) (*Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Kind:        KindDeduction,
		Description: description,
	}, nil
}
