package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeQuantity  = errors.New("quantity cannot be negative")
	ErrNegativeLinePrice = errors.New("line price cannot be negative")
	ErrTotalAlreadySet   = errors.New("total price is already finalized")
)

// Group is one checkout transaction: a unique order number, a total price
// finalized exactly once after all lines are priced, and a creation
// timestamp.
type Group struct {
	id         uuid.UUID
	number     Number
	totalPrice decimal.Decimal
	finalized  bool
	createdAt  time.Time
}

func NewGroup(number Number, createdAt time.Time) *Group {
	return &Group{
		id:         uuid.New(),
		number:     number,
		totalPrice: decimal.Zero,
		createdAt:  createdAt,
	}
}

func ReconstructGroup(id uuid.UUID, number Number, totalPrice decimal.Decimal, createdAt time.Time) *Group {
	return &Group{
		id:         id,
		number:     number,
		totalPrice: totalPrice,
		finalized:  true,
		createdAt:  createdAt,
	}
}

// Finalize sets the total price. It may be called only once per group.
func (g *Group) Finalize(total decimal.Decimal) error {
	if g.finalized {
		return ErrTotalAlreadySet
	}
	if total.IsNegative() {
		return ErrNegativeLinePrice
	}
	g.totalPrice = total
	g.finalized = true
	return nil
}

func (g *Group) ID() uuid.UUID               { return g.id }
func (g *Group) Number() Number              { return g.number }
func (g *Group) TotalPrice() decimal.Decimal { return g.totalPrice }
func (g *Group) CreatedAt() time.Time        { return g.createdAt }

// Line prices one quantity of one catalog item inside a group. Lines are
// written once during placement and never mutated.
type Line struct {
	id       uuid.UUID
	groupID  uuid.UUID
	itemID   uuid.UUID
	quantity int64
	price    decimal.Decimal
}

// NewLine records quantity units at the given exact line price. Zero
// quantities are allowed and produce a zero-price line.
func NewLine(groupID, itemID uuid.UUID, quantity int64, price decimal.Decimal) (*Line, error) {
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if price.IsNegative() {
		return nil, ErrNegativeLinePrice
	}

	return &Line{
		id:       uuid.New(),
		groupID:  groupID,
		itemID:   itemID,
		quantity: quantity,
		price:    price,
	}, nil
}

func ReconstructLine(id, groupID, itemID uuid.UUID, quantity int64, price decimal.Decimal) *Line {
	return &Line{
		id:       id,
		groupID:  groupID,
		itemID:   itemID,
		quantity: quantity,
		price:    price,
	}
}

func (l *Line) ID() uuid.UUID          { return l.id }
func (l *Line) GroupID() uuid.UUID     { return l.groupID }
func (l *Line) ItemID() uuid.UUID      { return l.itemID }
func (l *Line) Quantity() int64        { return l.quantity }
func (l *Line) Price() decimal.Decimal { return l.price }
