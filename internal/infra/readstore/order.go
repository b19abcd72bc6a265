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

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

const getOrderGroupViewSQL = `
SELECT id, number, total_price, created_at
FROM order_groups
WHERE number = $1
`

const getOrderLinesByGroupSQL = `
SELECT l.id, l.item_id, c.name, l.quantity, l.line_price
FROM order_lines l
JOIN catalog_items c ON c.id = l.item_id
WHERE l.group_id = $1
ORDER BY l.id
`

func (r *OrderReadStore) FindByNumber(ctx context.Context, number string) (*queries.OrderGroupView, error) {
	var (
		id        uuid.UUID
		num       string
		total     pgtype.Numeric
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, getOrderGroupViewSQL, number).Scan(&id, &num, &total, &createdAt)
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

	view := &queries.OrderGroupView{
		ID:         id,
		Number:     num,
		TotalPrice: totalDec,
		CreatedAt:  pgconv.TimeFromPgtype(createdAt),
	}

	lines, err := r.findLines(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Lines = lines

	return view, nil
}

func (r *OrderReadStore) findLines(ctx context.Context, groupID uuid.UUID) ([]queries.OrderLineView, error) {
	rows, err := r.db.Query(ctx, getOrderLinesByGroupSQL, groupID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order lines", err)
	}
	defer rows.Close()

	var lines []queries.OrderLineView
	for rows.Next() {
		var (
			lineID   uuid.UUID
			itemID   uuid.UUID
			itemName string
			quantity int64
			price    pgtype.Numeric
		)
		if err := rows.Scan(&lineID, &itemID, &itemName, &quantity, &price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order line row", err)
		}
		priceDec, err := pgconv.DecimalFromNumeric(price)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert order line price", err)
		}
		lines = append(lines, queries.OrderLineView{
			ID:        lineID,
			ItemID:    itemID,
			ItemName:  itemName,
			Quantity:  quantity,
			LinePrice: priceDec,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order line rows", err)
	}

	return lines, nil
}
