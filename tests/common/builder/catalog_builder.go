//go:build unit || e2e

package builder

import (
	"coffee-order-api/internal/domain/catalog"
	reqdto "coffee-order-api/internal/handler/dto/request"
	"coffee-order-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CoffeeBuilder struct {
	Name  string
	Price decimal.Decimal
}

func NewCoffeeBuilder() *CoffeeBuilder {
	return &CoffeeBuilder{
		Name:  "Americano",
		Price: decimal.RequireFromString("4.50"),
	}
}

func (b *CoffeeBuilder) With(mutate func(*CoffeeBuilder)) *CoffeeBuilder {
	mutate(b)
	return b
}

func (b *CoffeeBuilder) WithName(name string) *CoffeeBuilder {
	b.Name = name
	return b
}

func (b *CoffeeBuilder) WithPrice(price string) *CoffeeBuilder {
	b.Price = decimal.RequireFromString(price)
	return b
}

func (b *CoffeeBuilder) BuildDomain() (*catalog.Item, error) {
	return catalog.NewItem(b.Name, b.Price)
}

func (b *CoffeeBuilder) BuildSnapshot() *shared.CatalogItemSnapshot {
	return &shared.CatalogItemSnapshot{
		ID:    uuid.New(),
		Name:  b.Name,
		Price: b.Price,
	}
}

func (b *CoffeeBuilder) BuildRegisterRequestDTO() reqdto.RegisterCoffeeRequest {
	return reqdto.RegisterCoffeeRequest{
		Name:  b.Name,
		Price: b.Price,
	}
}
