//go:build unit || e2e

package builder

import (
	"coffee-order-api/internal/domain/loyalty"
	reqdto "coffee-order-api/internal/handler/dto/request"
	"coffee-order-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CardBuilder struct {
	CardNumber string
	Balance    decimal.Decimal
}

func NewCardBuilder() *CardBuilder {
	return &CardBuilder{
		CardNumber: "CARD-0001",
		Balance:    decimal.RequireFromString("100.00"),
	}
}

func (b *CardBuilder) WithCardNumber(n string) *CardBuilder {
	b.CardNumber = n
	return b
}

func (b *CardBuilder) WithBalance(balance string) *CardBuilder {
	b.Balance = decimal.RequireFromString(balance)
	return b
}

func (b *CardBuilder) BuildDomain() (*loyalty.Card, error) {
	return loyalty.NewCard(b.CardNumber, b.Balance)
}

func (b *CardBuilder) BuildSnapshot() *shared.CardSnapshot {
	return &shared.CardSnapshot{
		ID:         uuid.New(),
		CardNumber: b.CardNumber,
		Balance:    b.Balance,
	}
}

func (b *CardBuilder) BuildRegisterRequestDTO() reqdto.RegisterCardRequest {
	balance := b.Balance
	return reqdto.RegisterCardRequest{
		CardNumber: b.CardNumber,
		Balance:    &balance,
	}
}

func (b *CardBuilder) BuildAdjustRequestDTO(amount string) reqdto.AdjustBalanceRequest {
	return reqdto.AdjustBalanceRequest{
		CardNumber: b.CardNumber,
		Amount:     decimal.RequireFromString(amount),
	}
}
