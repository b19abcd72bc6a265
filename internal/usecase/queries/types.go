package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type CatalogItemView struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type OrderLineView struct {
	ID        uuid.UUID       `json:"id"`
	ItemID    uuid.UUID       `json:"item_id"`
	ItemName  string          `json:"item_name"`
	Quantity  int64           `json:"quantity"`
	LinePrice decimal.Decimal `json:"line_price"`
}

type OrderGroupView struct {
	ID         uuid.UUID       `json:"id"`
	Number     string          `json:"number"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
	Lines      []OrderLineView `json:"lines"`
}

type ProductView struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Policy       string          `json:"discount_policy"`
	DiscountRate decimal.Decimal `json:"discount_rate"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}
