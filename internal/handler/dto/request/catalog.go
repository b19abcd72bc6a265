package request

import (
	"github.com/shopspring/decimal"
)

type RegisterCoffeeRequest struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price" binding:"required"`
}
