package loyalty

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCardNumber     = errors.New("card number cannot be empty")
	ErrNegativeBalance     = errors.New("balance cannot be negative")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient point balance")
)

// Card is a loyalty account holding a non-negative point balance.
type Card struct {
	id         uuid.UUID
	cardNumber string
	balance    decimal.Decimal
}

// NewCard registers a card. A zero-value initial balance stands in for the
// "no initial balance" case.
func NewCard(cardNumber string, initialBalance decimal.Decimal) (*Card, error) {
	trimmed := strings.TrimSpace(cardNumber)
	if trimmed == "" {
		return nil, ErrEmptyCardNumber
	}
	if initialBalance.IsNegative() {
		return nil, ErrNegativeBalance
	}

	return &Card{
		id:         uuid.New(),
		cardNumber: trimmed,
		balance:    initialBalance,
	}, nil
}

func ReconstructCard(id uuid.UUID, cardNumber string, balance decimal.Decimal) *Card {
	return &Card{
		id:         id,
		cardNumber: cardNumber,
		balance:    balance,
	}
}

// Credit adds amount to the balance. Non-positive amounts are rejected so a
// refill can never act as a disguised debit.
func (c *Card) Credit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	c.balance = c.balance.Add(amount)
	return nil
}

// Debit subtracts amount from the balance. A debit that would go negative
// fails and leaves the balance untouched.
func (c *Card) Debit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if c.balance.LessThan(amount) {
		return ErrInsufficientBalance
	}
	c.balance = c.balance.Sub(amount)
	return nil
}

func (c *Card) ID() uuid.UUID            { return c.id }
func (c *Card) CardNumber() string       { return c.cardNumber }
func (c *Card) Balance() decimal.Decimal { return c.balance }
