package readstore

import (
	"context"

	"coffee-order-api/internal/domain/product"
	"coffee-order-api/internal/infra"
	"coffee-order-api/internal/infra/db"
	"coffee-order-api/internal/pkg/pgconv"
	"coffee-order-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(dbtx db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: dbtx}
}

const getProductViewSQL = `
SELECT id, name, price, discount_policy, discount_rate
FROM products
WHERE id = $1
`

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	var (
		rowID  uuid.UUID
		name   string
		price  pgtype.Numeric
		policy string
		rate   pgtype.Numeric
	)
	err := r.db.QueryRow(ctx, getProductViewSQL, id).Scan(&rowID, &name, &price, &policy, &rate)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}

	priceDec, err := pgconv.DecimalFromNumeric(price)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert product price", err)
	}
	rateDec, err := pgconv.DecimalFromNumeric(rate)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert discount rate", err)
	}

	entity := product.ReconstructProduct(rowID, name, priceDec, product.DiscountPolicy(policy), rateDec)

	return &queries.ProductView{
		ID:           rowID,
		Name:         name,
		Price:        priceDec,
		Policy:       policy,
		DiscountRate: rateDec,
		SellingPrice: entity.SellingPrice(),
	}, nil
}
