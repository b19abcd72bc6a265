package catalog

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName        = errors.New("item name cannot be empty")
	ErrNegativePrice    = errors.New("item price cannot be negative")
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
)

// Item is a purchasable catalog entry. Hits counts units ordered across all
// order groups and only ever grows; the order placement flow is its sole
// writer.
type Item struct {
	id    uuid.UUID
	name  string
	price decimal.Decimal
	hits  int64
}

func NewItem(name string, price decimal.Decimal) (*Item, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyName
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}

	return &Item{
		id:    uuid.New(),
		name:  trimmed,
		price: price,
		hits:  0,
	}, nil
}

func ReconstructItem(id uuid.UUID, name string, price decimal.Decimal, hits int64) *Item {
	return &Item{
		id:    id,
		name:  name,
		price: price,
		hits:  hits,
	}
}

// AddHits increments the ordered-units counter by quantity.
func (i *Item) AddHits(quantity int64) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	i.hits += quantity
	return nil
}

// LinePrice is the exact price of quantity units of this item.
func (i *Item) LinePrice(quantity int64) decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(quantity))
}

func (i *Item) ID() uuid.UUID          { return i.id }
func (i *Item) Name() string           { return i.name }
func (i *Item) Price() decimal.Decimal { return i.price }
func (i *Item) Hits() int64            { return i.hits }
