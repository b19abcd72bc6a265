package response

import (
	"coffee-order-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Policy       string          `json:"discount_policy"`
	DiscountRate decimal.Decimal `json:"discount_rate"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		ID:           v.ID,
		Name:         v.Name,
		Price:        v.Price,
		Policy:       v.Policy,
		DiscountRate: v.DiscountRate,
		SellingPrice: v.SellingPrice,
	}
}
