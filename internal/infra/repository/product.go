package repository

import (
	"context"

	"coffee-order-api/internal/domain/product"
	"coffee-order-api/internal/infra"
	"coffee-order-api/internal/infra/db"
	"coffee-order-api/internal/pkg/pgconv"
	"coffee-order-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProductRepository struct {
	db db.DBTX
}

func NewProductRepository(dbtx db.DBTX) *ProductRepository {
	return &ProductRepository{db: dbtx}
}

const createProductSQL = `
INSERT INTO products (id, name, price, discount_policy, discount_rate)
VALUES ($1, $2, $3, $4, $5)
`

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx, createProductSQL,
		p.ID(),
		p.Name(),
		pgconv.DecimalToNumeric(p.Price()),
		string(p.Policy()),
		pgconv.DecimalToNumeric(p.DiscountRate()),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create product", err)
	}
	return p.ID(), nil
}

const getProductByIDSQL = `
SELECT id, name, price, discount_policy, discount_rate
FROM products
WHERE id = $1
`

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	var (
		rowID  uuid.UUID
		name   string
		price  pgtype.Numeric
		policy string
		rate   pgtype.Numeric
	)
	err := r.db.QueryRow(ctx, getProductByIDSQL, id).Scan(&rowID, &name, &price, &policy, &rate)
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

	return &shared.ProductSnapshot{
		ID:           rowID,
		Name:         name,
		Price:        priceDec,
		Policy:       policy,
		DiscountRate: rateDec,
	}, nil
}

const updateProductSQL = `
UPDATE products
SET name = $2, price = $3, discount_policy = $4, discount_rate = $5
WHERE id = $1
`

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	tag, err := r.db.Exec(ctx, updateProductSQL,
		p.ID(),
		p.Name(),
		pgconv.DecimalToNumeric(p.Price()),
		string(p.Policy()),
		pgconv.DecimalToNumeric(p.DiscountRate()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}
