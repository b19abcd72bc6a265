package request

import (
	"coffee-order-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type OrderLineRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int64     `json:"quantity"`
}

type PlaceOrderRequest struct {
	CardNumber string             `json:"card_number" binding:"required"`
	Items      []OrderLineRequest `json:"items" binding:"required,min=1"`
}

func (r PlaceOrderRequest) ToCommand() []commands.PlaceOrderItem {
	items := make([]commands.PlaceOrderItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = commands.PlaceOrderItem{
			ItemID:   it.ItemID,
			Quantity: it.Quantity,
		}
	}
	return items
}
