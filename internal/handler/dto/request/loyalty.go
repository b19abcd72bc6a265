package request

import (
	"github.com/shopspring/decimal"
)

type RegisterCardRequest struct {
	CardNumber string `json:"card_number" binding:"required"`
	// Balance is optional; a missing balance registers an empty card.
	Balance *decimal.Decimal `json:"balance,omitempty"`
}

type AdjustBalanceRequest struct {
	CardNumber string          `json:"card_number" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
}
