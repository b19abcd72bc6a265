package response

import (
	"time"

	"coffee-order-api/internal/usecase/commands"
	"coffee-order-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlacedOrderResponse struct {
	OrderNumber string          `json:"order_number"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

type OrderLineResponse struct {
	ItemID    uuid.UUID       `json:"item_id"`
	ItemName  string          `json:"item_name"`
	Quantity  int64           `json:"quantity"`
	LinePrice decimal.Decimal `json:"line_price"`
}

type OrderResponse struct {
	OrderNumber string              `json:"order_number"`
	TotalPrice  decimal.Decimal     `json:"total_price"`
	CreatedAt   time.Time           `json:"created_at"`
	Lines       []OrderLineResponse `json:"lines"`
}

func FromPlaceOrderResult(r *commands.PlaceOrderResult) *PlacedOrderResponse {
	return &PlacedOrderResponse{
		OrderNumber: r.Number,
		TotalPrice:  r.TotalPrice,
	}
}

func FromOrderGroupView(v *queries.OrderGroupView) *OrderResponse {
	lines := make([]OrderLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = OrderLineResponse{
			ItemID:    l.ItemID,
			ItemName:  l.ItemName,
			Quantity:  l.Quantity,
			LinePrice: l.LinePrice,
		}
	}
	return &OrderResponse{
		OrderNumber: v.Number,
		TotalPrice:  v.TotalPrice,
		CreatedAt:   v.CreatedAt,
		Lines:       lines,
	}
}
