package product

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName             = errors.New("product name cannot be empty")
	ErrNegativePrice         = errors.New("product price cannot be negative")
	ErrInvalidDiscountPolicy = errors.New("invalid discount policy")
	ErrInvalidDiscountRate   = errors.New("discount rate must be between 0 and 100")
)

type DiscountPolicy string

const (
	DiscountNone    DiscountPolicy = "none"
	DiscountPercent DiscountPolicy = "percent"
)

func ParseDiscountPolicy(s string) (DiscountPolicy, error) {
	switch DiscountPolicy(s) {
	case DiscountNone, DiscountPercent:
		return DiscountPolicy(s), nil
	default:
		return "", ErrInvalidDiscountPolicy
	}
}

// Product is a sellable item with an optional percentage discount policy.
type Product struct {
	id           uuid.UUID
	name         string
	price        decimal.Decimal
	policy       DiscountPolicy
	discountRate decimal.Decimal
}

func NewProduct(name string, price decimal.Decimal, policy DiscountPolicy, discountRate decimal.Decimal) (*Product, error) {
	p := &Product{id: uuid.New()}
	if err := p.apply(name, price, policy, discountRate); err != nil {
		return nil, err
	}
	return p, nil
}

func ReconstructProduct(id uuid.UUID, name string, price decimal.Decimal, policy DiscountPolicy, discountRate decimal.Decimal) *Product {
	return &Product{
		id:           id,
		name:         name,
		price:        price,
		policy:       policy,
		discountRate: discountRate,
	}
}

// Update replaces name, price and discount policy in one step, the way the
// product PATCH endpoint submits them.
func (p *Product) Update(name string, price decimal.Decimal, policy DiscountPolicy, discountRate decimal.Decimal) error {
	return p.apply(name, price, policy, discountRate)
}

func (p *Product) apply(name string, price decimal.Decimal, policy DiscountPolicy, discountRate decimal.Decimal) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyName
	}
	if price.IsNegative() {
		return ErrNegativePrice
	}
	switch policy {
	case DiscountNone:
		discountRate = decimal.Zero
	case DiscountPercent:
		if discountRate.IsNegative() || discountRate.GreaterThan(decimal.NewFromInt(100)) {
			return ErrInvalidDiscountRate
		}
	default:
		return ErrInvalidDiscountPolicy
	}

	p.name = trimmed
	p.price = price
	p.policy = policy
	p.discountRate = discountRate
	return nil
}

// SellingPrice is the list price with the discount policy applied, computed
// with exact decimal arithmetic.
func (p *Product) SellingPrice() decimal.Decimal {
	if p.policy != DiscountPercent {
		return p.price
	}
	discount := p.price.Mul(p.discountRate).Div(decimal.NewFromInt(100))
	return p.price.Sub(discount)
}

func (p *Product) ID() uuid.UUID                 { return p.id }
func (p *Product) Name() string                  { return p.name }
func (p *Product) Price() decimal.Decimal        { return p.price }
func (p *Product) Policy() DiscountPolicy        { return p.policy }
func (p *Product) DiscountRate() decimal.Decimal { return p.discountRate }
