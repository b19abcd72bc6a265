package repository

import (
	"context"

	"coffee-order-api/internal/domain/payment"
	"coffee-order-api/internal/infra"
	"coffee-order-api/internal/infra/db"
	"coffee-order-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(dbtx db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: dbtx}
}

const createPaymentSQL = `
INSERT INTO payments (id, order_number, card_number, amount, created_at)
VALUES ($1, $2, $3, $4, $5)
`

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx, createPaymentSQL,
		p.ID(),
		p.OrderNumber(),
		p.CardNumber(),
		pgconv.DecimalToNumeric(p.Amount()),
		pgconv.TimeToPgtype(p.CreatedAt()),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create payment", err)
	}
	return p.ID(), nil
}
