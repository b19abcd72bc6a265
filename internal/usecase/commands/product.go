package commands

import (
	"context"

	"coffee-order-api/internal/domain/product"
	"coffee-order-api/internal/infra"
	"coffee-order-api/internal/pkg/errs"
	"coffee-order-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidProduct  = errs.New("invalid product")
	ErrProductNotFound = errs.New("product not found")
)

type ProductInput struct {
	Name         string
	Price        decimal.Decimal
	Policy       string
	DiscountRate decimal.Decimal
}

type ProductCommands interface {
	Add(ctx context.Context, in ProductInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in ProductInput) error
}

type productCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewProductCommands(uow shared.UnitOfWork) ProductCommands {
	return &productCommandsImpl{uow: uow}
}

func (c *productCommandsImpl) Add(ctx context.Context, in ProductInput) (uuid.UUID, error) {
	policy, err := product.ParseDiscountPolicy(in.Policy)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidProduct)
	}

	p, err := product.NewProduct(in.Name, in.Price, policy, in.DiscountRate)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidProduct)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Products().Create(ctx, p)
		return err
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return p.ID(), nil
}

func (c *productCommandsImpl) Update(ctx context.Context, id uuid.UUID, in ProductInput) error {
	policy, err := product.ParseDiscountPolicy(in.Policy)
	if err != nil {
		return errs.Mark(err, ErrInvalidProduct)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Products().FindByID(ctx, id)
		if err != nil {
			return err
		}

		existing := product.ReconstructProduct(
			snap.ID, snap.Name, snap.Price,
			product.DiscountPolicy(snap.Policy), snap.DiscountRate,
		)
		if err := existing.Update(in.Name, in.Price, policy, in.DiscountRate); err != nil {
			return err
		}

		return tx.Products().Update(ctx, existing)
	})

	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return ErrProductNotFound
	case errs.Is(err, product.ErrEmptyName),
		errs.Is(err, product.ErrNegativePrice),
		errs.Is(err, product.ErrInvalidDiscountPolicy),
		errs.Is(err, product.ErrInvalidDiscountRate):
		return errs.Mark(err, ErrInvalidProduct)
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
