package queries

import (
	"context"

	"coffee-order-api/internal/infra"
	"coffee-order-api/internal/pkg/errs"
)

var ErrOrderGroupNotFound = errs.New("order group not found")

type OrderQueries interface {
	GetByNumber(ctx context.Context, number string) (*OrderGroupView, error)
}

type OrderReadStore interface {
	FindByNumber(ctx context.Context, number string) (*OrderGroupView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByNumber(ctx context.Context, number string) (*OrderGroupView, error) {
	view, err := q.store.FindByNumber(ctx, number)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderGroupNotFound
		}
		return nil, err
	}
	return view, nil
}
