package response

import (
	"coffee-order-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CoffeeResponse struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type RegisteredResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromCatalogItemView(v *queries.CatalogItemView) *CoffeeResponse {
	return &CoffeeResponse{
		ID:    v.ID,
		Name:  v.Name,
		Price: v.Price,
	}
}
