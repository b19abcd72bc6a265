package commands

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentGateway is the outbound port to the card processor. Implementations
// live in the infra layer.
type PaymentGateway interface {
	Charge(ctx context.Context, cardNumber string, amount decimal.Decimal) error
}
