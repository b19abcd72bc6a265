package commands

import (
	"context"

	"coffee-order-api/internal/domain/payment"
	"coffee-order-api/internal/infra"
	"coffee-order-api/internal/pkg/clock"
	"coffee-order-api/internal/pkg/errs"
	"coffee-order-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errs.New("order not found")
	ErrChargeFailed  = errs.New("payment charge failed")
	ErrInvalidCharge = errs.New("invalid payment request")
)

type PayResult struct {
	PaymentID uuid.UUID
	Amount    string
}

type PaymentCommands interface {
	// Pay charges an order group's finalized total against the given card.
	Pay(ctx context.Context, orderNumber, cardNumber string) (*PayResult, error)
}

type paymentCommandsImpl struct {
	uow     shared.UnitOfWork
	gateway PaymentGateway
	clock   clock.Clock
}

func NewPaymentCommands(uow shared.UnitOfWork, gateway PaymentGateway, clk clock.Clock) PaymentCommands {
	return &paymentCommandsImpl{
		uow:     uow,
		gateway: gateway,
		clock:   clk,
	}
}

func (c *paymentCommandsImpl) Pay(ctx context.Context, orderNumber, cardNumber string) (*PayResult, error) {
	var result *PayResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		group, err := tx.Orders().FindGroupByNumber(ctx, orderNumber)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		p, err := payment.NewPayment(group.Number, cardNumber, group.TotalPrice, c.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrInvalidCharge)
		}

		// The charge runs inside the transaction so a gateway failure rolls
		// the payment record back; a commit without a successful charge is
		// never possible. The gateway itself is not transactional, so a
		// rollback after a successful charge can over-charge; acceptable for
		// a logging stub, revisit when a real processor is wired.
		if err := c.gateway.Charge(ctx, p.CardNumber(), p.Amount()); err != nil {
			return errs.Mark(err, ErrChargeFailed)
		}

		if _, err := tx.Payments().Create(ctx, p); err != nil {
			return err
		}

		result = &PayResult{
			PaymentID: p.ID(),
			Amount:    p.Amount().String(),
		}
		return nil
	})
	if err != nil {
		switch {
		case errs.Is(err, ErrOrderNotFound),
			errs.Is(err, ErrChargeFailed),
			errs.Is(err, ErrInvalidCharge):
			return nil, err
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	return result, nil
}
