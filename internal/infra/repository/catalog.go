package repository

import (
	"context"

	"coffee-order-api/internal/domain/catalog"
	"coffee-order-api/internal/infra"
	"coffee-order-api/internal/infra/db"
	"coffee-order-api/internal/pkg/pgconv"
	"coffee-order-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogRepository struct {
	db db.DBTX
}

func NewCatalogRepository(dbtx db.DBTX) *CatalogRepository {
	return &CatalogRepository{db: dbtx}
}

const createCatalogItemSQL = `
INSERT INTO catalog_items (id, name, price, hits)
VALUES ($1, $2, $3, $4)
`

func (r *CatalogRepository) Create(ctx context.Context, item *catalog.Item) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx, createCatalogItemSQL,
		item.ID(),
		item.Name(),
		pgconv.DecimalToNumeric(item.Price()),
		item.Hits(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create catalog item", err)
	}
	return item.ID(), nil
}

const getCatalogItemByIDSQL = `
SELECT id, name, price, hits
FROM catalog_items
WHERE id = $1
`

func (r *CatalogRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.CatalogItemSnapshot, error) {
	var (
		rowID uuid.UUID
		name  string
		price pgtype.Numeric
		hits  int64
	)
	err := r.db.QueryRow(ctx, getCatalogItemByIDSQL, id).Scan(&rowID, &name, &price, &hits)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("catalog item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find catalog item by ID", err)
	}

	priceDec, err := pgconv.DecimalFromNumeric(price)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert catalog item price", err)
	}

	return &shared.CatalogItemSnapshot{
		ID:    rowID,
		Name:  name,
		Price: priceDec,
		Hits:  hits,
	}, nil
}

const addCatalogItemHitsSQL = `
UPDATE catalog_items
SET hits = hits + $2
WHERE id = $1
`

func (r *CatalogRepository) AddHits(ctx context.Context, id uuid.UUID, quantity int64) error {
	tag, err := r.db.Exec(ctx, addCatalogItemHitsSQL, id, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to update catalog item hits", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("catalog item not found", nil, infra.KindNotFound)
	}
	return nil
}
