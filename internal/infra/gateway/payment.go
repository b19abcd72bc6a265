package gateway

import (
	"context"
	"log/slog"

	"coffee-order-api/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

// LoggingPaymentGateway approves every charge and records it to the log.
// It stands in for the real card processor integration.
type LoggingPaymentGateway struct{}

func NewLoggingPaymentGateway() commands.PaymentGateway {
	return &LoggingPaymentGateway{}
}

func (g *LoggingPaymentGateway) Charge(ctx context.Context, cardNumber string, amount decimal.Decimal) error {
	slog.InfoContext(ctx, "charging card",
		"card_number", maskCardNumber(cardNumber),
		"amount", amount.String(),
	)
	return nil
}

// maskCardNumber keeps only the last 4 digits in log output.
func maskCardNumber(n string) string {
	if len(n) <= 4 {
		return n
	}
	return "****" + n[len(n)-4:]
}
