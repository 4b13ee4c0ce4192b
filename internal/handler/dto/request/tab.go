package request

import (
	"github.com/google/uuid"
)

// AddItemRequest adds quantity units of one menu item to the open tab.
// Quantity is optional and defaults to a single unit.
type AddItemRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity *int      `json:"quantity,omitempty"`
}

func (r AddItemRequest) QuantityOrDefault() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}
