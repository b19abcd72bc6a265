package request

import (
	"coffee-order-api/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	Name         string          `json:"name" binding:"required"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	Policy       string          `json:"discount_policy" binding:"required"`
	DiscountRate decimal.Decimal `json:"discount_rate"`
}

func (r ProductRequest) ToCommand() commands.ProductInput {
	return commands.ProductInput{
		Name:         r.Name,
		Price:        r.Price,
		Policy:       r.Policy,
		DiscountRate: r.DiscountRate,
	}
}
