//go:build unit || e2e

package builder

import (
	reqdto "coffee-order-api/internal/handler/dto/request"
	"coffee-order-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	CardNumber string
	Items      []reqdto.OrderLineRequest
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		CardNumber: "CARD-0001",
		Items: []reqdto.OrderLineRequest{
			{ItemID: uuid.New(), Quantity: 2},
		},
	}
}

func (b *OrderBuilder) WithCardNumber(n string) *OrderBuilder {
	b.CardNumber = n
	return b
}

func (b *OrderBuilder) WithItems(items ...reqdto.OrderLineRequest) *OrderBuilder {
	b.Items = items
	return b
}

func (b *OrderBuilder) BuildPlaceRequestDTO() reqdto.PlaceOrderRequest {
	return reqdto.PlaceOrderRequest{
		CardNumber: b.CardNumber,
		Items:      b.Items,
	}
}

func (b *OrderBuilder) BuildPlaceItems() []commands.PlaceOrderItem {
	items := make([]commands.PlaceOrderItem, len(b.Items))
	for i, it := range b.Items {
		items[i] = commands.PlaceOrderItem{ItemID: it.ItemID, Quantity: it.Quantity}
	}
	return items
}
