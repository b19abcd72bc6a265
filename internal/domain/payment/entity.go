package payment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCardNumber = errors.New("card number cannot be empty")
	ErrNegativeAmount  = errors.New("payment amount cannot be negative")
)

// Payment records one charge of an order group's total against a card,
// executed through the external gateway.
type Payment struct {
	id          uuid.UUID
	orderNumber string
	cardNumber  string
	amount      decimal.Decimal
	createdAt   time.Time
}

func NewPayment(orderNumber, cardNumber string, amount decimal.Decimal, createdAt time.Time) (*Payment, error) {
	trimmed := strings.TrimSpace(cardNumber)
	if trimmed == "" {
		return nil, ErrEmptyCardNumber
	}
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	return &Payment{
		id:          uuid.New(),
		orderNumber: orderNumber,
		cardNumber:  trimmed,
		amount:      amount,
		createdAt:   createdAt,
	}, nil
}

func ReconstructPayment(id uuid.UUID, orderNumber, cardNumber string, amount decimal.Decimal, createdAt time.Time) *Payment {
	return &Payment{
		id:          id,
		orderNumber: orderNumber,
		cardNumber:  cardNumber,
		amount:      amount,
		createdAt:   createdAt,
	}
}

func (p *Payment) ID() uuid.UUID           { return p.id }
func (p *Payment) OrderNumber() string     { return p.orderNumber }
func (p *Payment) CardNumber() string      { return p.cardNumber }
func (p *Payment) Amount() decimal.Decimal { return p.amount }
func (p *Payment) CreatedAt() time.Time    { return p.createdAt }
