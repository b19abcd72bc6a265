package readstore

import (
	"context"

	"coffee-order-api/internal/infra"
	"coffee-order-api/internal/infra/db"
	"coffee-order-api/internal/pkg/pgconv"
	"coffee-order-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx}
}

const listCatalogItemsSQL = `
SELECT id, name, price
FROM catalog_items
ORDER BY name, id
`

func (r *CatalogReadStore) FindAll(ctx context.Context) ([]*queries.CatalogItemView, error) {
	rows, err := r.db.Query(ctx, listCatalogItemsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list catalog items", err)
	}
	defer rows.Close()

	var result []*queries.CatalogItemView
	for rows.Next() {
		var (
			id    uuid.UUID
			name  string
			price pgtype.Numeric
		)
		if err := rows.Scan(&id, &name, &price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan catalog item row", err)
		}
		priceDec, err := pgconv.DecimalFromNumeric(price)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert catalog item price", err)
		}
		result = append(result, &queries.CatalogItemView{
			ID:    id,
			Name:  name,
			Price: priceDec,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate catalog item rows", err)
	}

	return result, nil
}
