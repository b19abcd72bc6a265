package queries

import (
	"context"
)

type CatalogQueries interface {
	List(ctx context.Context) ([]*CatalogItemView, error)
}

type CatalogReadStore interface {
	FindAll(ctx context.Context) ([]*CatalogItemView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) List(ctx context.Context) ([]*CatalogItemView, error) {
	return q.store.FindAll(ctx)
}
