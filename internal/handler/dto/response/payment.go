package response

import (
	"coffee-order-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	PaymentID uuid.UUID `json:"payment_id"`
	Amount    string    `json:"amount"`
}

func FromPayResult(r *commands.PayResult) *PaymentResponse {
	return &PaymentResponse{
		PaymentID: r.PaymentID,
		Amount:    r.Amount,
	}
}
