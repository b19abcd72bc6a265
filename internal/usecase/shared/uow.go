package shared

import (
	"context"

	"coffee-order-api/internal/domain/catalog"
	"coffee-order-api/internal/domain/loyalty"
	"coffee-order-api/internal/domain/order"
	"coffee-order-api/internal/domain/payment"
	"coffee-order-api/internal/domain/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx hands out transaction-bound repositories; every repository obtained
// from the same Tx writes through the same database transaction.
type Tx interface {
	Catalog() CatalogRepository
	Cards() CardRepository
	Orders() OrderRepository
	Products() ProductRepository
	Payments() PaymentRepository
}

type CatalogRepository interface {
	Create(ctx context.Context, item *catalog.Item) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CatalogItemSnapshot, error)
	// AddHits increments the ordered-units counter in place.
	AddHits(ctx context.Context, id uuid.UUID, quantity int64) error
}

type CardRepository interface {
	Create(ctx context.Context, card *loyalty.Card) (uuid.UUID, error)
	FindByNumber(ctx context.Context, cardNumber string) (*CardSnapshot, error)
	// AdjustBalance applies delta to the stored balance in place; a delta
	// that would take the balance negative is rejected as a check-violated
	// repository error without modifying the row.
	AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error
}

type OrderRepository interface {
	// CreateGroup inserts a group; the unique constraint on the order number
	// reports a taken number as a duplicate-key repository error.
	CreateGroup(ctx context.Context, group *order.Group) (uuid.UUID, error)
	FindGroupByNumber(ctx context.Context, number string) (*OrderGroupSnapshot, error)
	CreateLine(ctx context.Context, line *order.Line) (uuid.UUID, error)
	UpdateGroupTotal(ctx context.Context, id uuid.UUID, total decimal.Decimal) error
}

type ProductRepository interface {
	Create(ctx context.Context, p *product.Product) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	Update(ctx context.Context, p *product.Product) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) (uuid.UUID, error)
}
