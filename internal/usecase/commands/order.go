package commands

import (
	"context"

	"coffee-order-api/internal/domain/order"
	"coffee-order-api/internal/infra"
	"coffee-order-api/internal/pkg/clock"
	"coffee-order-api/internal/pkg/config"
	"coffee-order-api/internal/pkg/errs"
	"coffee-order-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrItemNotFound         = errs.New("catalog item not found")
	ErrInvalidQuantity      = errs.New("quantity cannot be negative")
	ErrEmptyOrder           = errs.New("order must contain at least one item")
	ErrOrderNumberExhausted = errs.New("order number space exhausted for today")
)

type PlaceOrderItem struct {
	ItemID   uuid.UUID
	Quantity int64
}

type PlaceOrderResult struct {
	GroupID    uuid.UUID
	Number     string
	TotalPrice decimal.Decimal
}

type OrderCommands interface {
	PlaceOrder(ctx context.Context, cardNumber string, items []PlaceOrderItem) (*PlaceOrderResult, error)
}

type orderCommandsImpl struct {
	uow             shared.UnitOfWork
	clock           clock.Clock
	maxAllocRetries int
}

func NewOrderCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) OrderCommands {
	retries := cfg.Order.MaxAllocRetries
	if retries <= 0 || retries > order.SequencePerDay {
		retries = order.SequencePerDay
	}
	return &orderCommandsImpl{
		uow:             uow,
		clock:           clk,
		maxAllocRetries: retries,
	}
}

// PlaceOrder runs the whole placement as one transaction: card lookup, order
// number allocation, line pricing, hit-count updates and the final total all
// commit together or not at all.
func (c *orderCommandsImpl) PlaceOrder(ctx context.Context, cardNumber string, items []PlaceOrderItem) (*PlaceOrderResult, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, it := range items {
		if it.Quantity < 0 {
			return nil, ErrInvalidQuantity
		}
	}

	var result *PlaceOrderResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The card is only checked for existence here; ordering never
		// touches the point balance.
		if _, err := tx.Cards().FindByNumber(ctx, cardNumber); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCardNotFound
			}
			return err
		}

		group, err := c.allocateGroup(ctx, tx)
		if err != nil {
			return err
		}

		total := decimal.Zero

		// Line items are processed in caller order; repeated item IDs stay
		// separate lines and bump the hit counter separately.
		for _, it := range items {
			item, err := tx.Catalog().FindByID(ctx, it.ItemID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return ErrItemNotFound
				}
				return err
			}

			linePrice := item.Price.Mul(decimal.NewFromInt(it.Quantity))

			line, err := order.NewLine(group.ID(), item.ID, it.Quantity, linePrice)
			if err != nil {
				return err
			}
			if _, err := tx.Orders().CreateLine(ctx, line); err != nil {
				return err
			}

			if err := tx.Catalog().AddHits(ctx, item.ID, it.Quantity); err != nil {
				return err
			}

			total = total.Add(linePrice)
		}

		if err := group.Finalize(total); err != nil {
			return err
		}
		if err := tx.Orders().UpdateGroupTotal(ctx, group.ID(), total); err != nil {
			return err
		}

		result = &PlaceOrderResult{
			GroupID:    group.ID(),
			Number:     group.Number().String(),
			TotalPrice: total,
		}
		return nil
	})
	if err != nil {
		switch {
		case errs.Is(err, ErrCardNotFound),
			errs.Is(err, ErrItemNotFound),
			errs.Is(err, ErrOrderNumberExhausted):
			return nil, err
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	return result, nil
}

// allocateGroup walks today's sequence space from 0 until an insert wins.
// The lookup is only an optimization; the insert itself is the atomic
// uniqueness check, so losing a race to a concurrent placement just moves on
// to the next sequence.
func (c *orderCommandsImpl) allocateGroup(ctx context.Context, tx shared.Tx) (*order.Group, error) {
	now := c.clock.Now()

	for seq := 0; seq < c.maxAllocRetries; seq++ {
		number, err := order.NewNumber(now, seq)
		if err != nil {
			return nil, err
		}

		_, err = tx.Orders().FindGroupByNumber(ctx, number.String())
		if err == nil {
			continue // number taken
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}

		group := order.NewGroup(number, now)
		if _, err := tx.Orders().CreateGroup(ctx, group); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				continue // lost the race, try the next sequence
			}
			return nil, err
		}
		return group, nil
	}

	return nil, ErrOrderNumberExhausted
}
