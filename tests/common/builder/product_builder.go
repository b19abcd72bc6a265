//go:build unit || e2e

package builder

import (
	"coffee-order-api/internal/domain/product"
	reqdto "coffee-order-api/internal/handler/dto/request"

	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	Name         string
	Price        decimal.Decimal
	Policy       string
	DiscountRate decimal.Decimal
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		Name:         "Coffee Beans 1kg",
		Price:        decimal.RequireFromString("20.00"),
		Policy:       "percent",
		DiscountRate: decimal.RequireFromString("10"),
	}
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.Name = name
	return b
}

func (b *ProductBuilder) WithPrice(price string) *ProductBuilder {
	b.Price = decimal.RequireFromString(price)
	return b
}

func (b *ProductBuilder) WithPolicy(policy string, rate string) *ProductBuilder {
	b.Policy = policy
	b.DiscountRate = decimal.RequireFromString(rate)
	return b
}

func (b *ProductBuilder) BuildDomain() (*product.Product, error) {
	policy, err := product.ParseDiscountPolicy(b.Policy)
	if err != nil {
		return nil, err
	}
	return product.NewProduct(b.Name, b.Price, policy, b.DiscountRate)
}

func (b *ProductBuilder) BuildRequestDTO() reqdto.ProductRequest {
	return reqdto.ProductRequest{
		Name:         b.Name,
		Price:        b.Price,
		Policy:       b.Policy,
		DiscountRate: b.DiscountRate,
	}
}
