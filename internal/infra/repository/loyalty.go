package repository

import (
	"context"

	"coffee-order-api/internal/domain/loyalty"
	"coffee-order-api/internal/infra"
	"coffee-order-api/internal/infra/db"
	"coffee-order-api/internal/pkg/pgconv"
	"coffee-order-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type CardRepository struct {
	db db.DBTX
}

func NewCardRepository(dbtx db.DBTX) *CardRepository {
	return &CardRepository{db: dbtx}
}

const createCardSQL = `
INSERT INTO loyalty_cards (id, card_number, balance)
VALUES ($1, $2, $3)
`

func (r *CardRepository) Create(ctx context.Context, card *loyalty.Card) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx, createCardSQL,
		card.ID(),
		card.CardNumber(),
		pgconv.DecimalToNumeric(card.Balance()),
	)
	if err != nil {
		// 23505 on card_number surfaces as KindDuplicateKey via WrapRepoErr
		return uuid.Nil, infra.WrapRepoErr("failed to create loyalty card", err)
	}
	return card.ID(), nil
}

const getCardByNumberSQL = `
SELECT id, card_number, balance
FROM loyalty_cards
WHERE card_number = $1
`

func (r *CardRepository) FindByNumber(ctx context.Context, cardNumber string) (*shared.CardSnapshot, error) {
	var (
		id      uuid.UUID
		number  string
		balance pgtype.Numeric
	)
	err := r.db.QueryRow(ctx, getCardByNumberSQL, cardNumber).Scan(&id, &number, &balance)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("loyalty card not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find loyalty card by number", err)
	}

	balanceDec, err := pgconv.DecimalFromNumeric(balance)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert card balance", err)
	}

	return &shared.CardSnapshot{
		ID:         id,
		CardNumber: number,
		Balance:    balanceDec,
	}, nil
}

const adjustCardBalanceSQL = `
UPDATE loyalty_cards
SET balance = balance + $2
WHERE id = $1 AND balance + $2 >= 0
`

// AdjustBalance adds delta to the stored balance in a single UPDATE, like
// AddHits on catalog items. The WHERE guard re-reads the committed balance,
// so a concurrent debit cannot overdraw the card; the stale value computed
// from an earlier snapshot never reaches the row.
func (r *CardRepository) AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	tag, err := r.db.Exec(ctx, adjustCardBalanceSQL, id, pgconv.DecimalToNumeric(delta))
	if err != nil {
		// 23514 on the balance CHECK also lands here as KindCheckViolated
		return infra.WrapRepoErr("failed to adjust card balance", err)
	}
	if tag.RowsAffected() == 0 {
		// Cards are never deleted; zero rows means the guard rejected the
		// delta against the latest committed balance.
		return infra.WrapRepoErr("balance would go negative", nil, infra.KindCheckViolated)
	}
	return nil
}
