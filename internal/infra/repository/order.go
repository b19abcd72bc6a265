package repository

import (
	"context"

	"coffee-order-api/internal/domain/order"
	"coffee-order-api/internal/infra"
	"coffee-order-api/internal/infra/db"
	"coffee-order-api/internal/pkg/pgconv"
	"coffee-order-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

// ON CONFLICT DO NOTHING makes the number check and the insert one atomic
// statement, so a lost race shows up as zero affected rows instead of an
// aborted transaction.
const createOrderGroupSQL = `
INSERT INTO order_groups (id, number, total_price, created_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (number) DO NOTHING
`

func (r *OrderRepository) CreateGroup(ctx context.Context, group *order.Group) (uuid.UUID, error) {
	tag, err := r.db.Exec(ctx, createOrderGroupSQL,
		group.ID(),
		group.Number().String(),
		pgconv.DecimalToNumeric(group.TotalPrice()),
		pgconv.TimeToPgtype(group.CreatedAt()),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order group", err)
	}
	if tag.RowsAffected() == 0 {
		return uuid.Nil, infra.WrapRepoErr("order number already taken", nil, infra.KindDuplicateKey)
	}
	return group.ID(), nil
}

const getOrderGroupByNumberSQL = `
SELECT id, number, total_price, created_at
FROM order_groups
WHERE number = $1
`

func (r *OrderRepository) FindGroupByNumber(ctx context.Context, number string) (*shared.OrderGroupSnapshot, error) {
	var (
		id        uuid.UUID
		num       string
		total     pgtype.Numeric
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, getOrderGroupByNumberSQL, number).Scan(&id, &num, &total, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order group not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order group by number", err)
	}

	totalDec, err := pgconv.DecimalFromNumeric(total)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert order group total", err)
	}

	return &shared.OrderGroupSnapshot{
		ID:         id,
		Number:     num,
		TotalPrice: totalDec,
		CreatedAt:  pgconv.TimeFromPgtype(createdAt),
	}, nil
}

const createOrderLineSQL = `
INSERT INTO order_lines (id, group_id, item_id, quantity, line_price)
VALUES ($1, $2, $3, $4, $5)
`

func (r *OrderRepository) CreateLine(ctx context.Context, line *order.Line) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx, createOrderLineSQL,
		line.ID(),
		line.GroupID(),
		line.ItemID(),
		line.Quantity(),
		pgconv.DecimalToNumeric(line.Price()),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order line", err)
	}
	return line.ID(), nil
}

const updateOrderGroupTotalSQL = `
UPDATE order_groups
SET total_price = $2
WHERE id = $1
`

func (r *OrderRepository) UpdateGroupTotal(ctx context.Context, id uuid.UUID, total decimal.Decimal) error {
	tag, err := r.db.Exec(ctx, updateOrderGroupTotalSQL, id, pgconv.DecimalToNumeric(total))
	if err != nil {
		return infra.WrapRepoErr("failed to update order group total", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order group not found", nil, infra.KindNotFound)
	}
	return nil
}
