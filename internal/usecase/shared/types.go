package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots keep command flows off the read-side query types.

type CatalogItemSnapshot struct {
	ID    uuid.UUID
	Name  string
	Price decimal.Decimal
	Hits  int64
}

type CardSnapshot struct {
	ID         uuid.UUID
	CardNumber string
	Balance    decimal.Decimal
}

type OrderGroupSnapshot struct {
	ID         uuid.UUID
	Number     string
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
}

type ProductSnapshot struct {
	ID           uuid.UUID
	Name         string
	Price        decimal.Decimal
	Policy       string
	DiscountRate decimal.Decimal
}
