package commands

import (
	"context"

	"coffee-order-api/internal/domain/loyalty"
	"coffee-order-api/internal/infra"
	"coffee-order-api/internal/pkg/errs"
	"coffee-order-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCardNotFound        = errs.New("loyalty card not found")
	ErrDuplicateCardNumber = errs.New("card number already registered")
	ErrInvalidCard         = errs.New("invalid loyalty card")
	ErrInvalidAmount       = errs.New("amount must be positive")
	ErrInsufficientBalance = errs.New("insufficient point balance")
)

type LoyaltyCommands interface {
	// Register creates a card; a nil initialBalance means zero.
	Register(ctx context.Context, cardNumber string, initialBalance *decimal.Decimal) (uuid.UUID, error)
	Refill(ctx context.Context, cardNumber string, amount decimal.Decimal) error
	Redeem(ctx context.Context, cardNumber string, amount decimal.Decimal) error
}

type loyaltyCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewLoyaltyCommands(uow shared.UnitOfWork) LoyaltyCommands {
	return &loyaltyCommandsImpl{uow: uow}
}

func (c *loyaltyCommandsImpl) Register(ctx context.Context, cardNumber string, initialBalance *decimal.Decimal) (uuid.UUID, error) {
	balance := decimal.Zero
	if initialBalance != nil {
		balance = *initialBalance
	}

	card, err := loyalty.NewCard(cardNumber, balance)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidCard)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Cards().Create(ctx, card)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateCardNumber
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return card.ID(), nil
}

func (c *loyaltyCommandsImpl) Refill(ctx context.Context, cardNumber string, amount decimal.Decimal) error {
	return c.adjustBalance(ctx, cardNumber, amount, (*loyalty.Card).Credit, amount)
}

func (c *loyaltyCommandsImpl) Redeem(ctx context.Context, cardNumber string, amount decimal.Decimal) error {
	return c.adjustBalance(ctx, cardNumber, amount, (*loyalty.Card).Debit, amount.Neg())
}

// adjustBalance validates the operation against a snapshot, then applies
// delta with an atomic in-place UPDATE. The snapshot check gives a precise
// error for the common case; the UPDATE's own balance guard is what holds
// under concurrent adjustments, where the snapshot may already be stale.
func (c *loyaltyCommandsImpl) adjustBalance(
	ctx context.Context,
	cardNumber string,
	amount decimal.Decimal,
	op func(*loyalty.Card, decimal.Decimal) error,
	delta decimal.Decimal,
) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Cards().FindByNumber(ctx, cardNumber)
		if err != nil {
			return err
		}

		card := loyalty.ReconstructCard(snap.ID, snap.CardNumber, snap.Balance)
		if err := op(card, amount); err != nil {
			return err
		}

		return tx.Cards().AdjustBalance(ctx, card.ID(), delta)
	})

	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return ErrCardNotFound
	case errs.Is(err, loyalty.ErrInvalidAmount):
		return ErrInvalidAmount
	case errs.Is(err, loyalty.ErrInsufficientBalance):
		return ErrInsufficientBalance
	case infra.IsKind(err, infra.KindCheckViolated):
		// A concurrent debit drained the balance after our snapshot read.
		return ErrInsufficientBalance
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
