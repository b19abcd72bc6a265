package commands

import (
	"context"

	"coffee-order-api/internal/domain/catalog"
	"coffee-order-api/internal/pkg/errs"
	"coffee-order-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCatalogItem      = errs.New("invalid catalog item")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CatalogCommands interface {
	Register(ctx context.Context, name string, price decimal.Decimal) (uuid.UUID, error)
}

type catalogCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCatalogCommands(uow shared.UnitOfWork) CatalogCommands {
	return &catalogCommandsImpl{uow: uow}
}

func (c *catalogCommandsImpl) Register(ctx context.Context, name string, price decimal.Decimal) (uuid.UUID, error) {
	item, err := catalog.NewItem(name, price)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidCatalogItem)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Catalog().Create(ctx, item)
		return err
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return item.ID(), nil
}
