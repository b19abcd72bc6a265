//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"coffee-order-api/internal/domain/order"
	"coffee-order-api/internal/infra"
	"coffee-order-api/internal/pkg/clock"
	"coffee-order-api/internal/pkg/config"
	"coffee-order-api/internal/usecase/commands"
	"coffee-order-api/internal/usecase/shared"
	sharedmock "coffee-order-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var errNotFound = infra.WrapRepoErr("not found", nil, infra.KindNotFound)
var errDuplicate = infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey)

type OrderCommandsTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	uow     *sharedmock.MockUnitOfWork
	tx      *sharedmock.MockTx
	cards   *sharedmock.MockCardRepository
	catalog *sharedmock.MockCatalogRepository
	orders  *sharedmock.MockOrderRepository
	clock   *clock.MockClock

	commands commands.OrderCommands
}

func (s *OrderCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.cards = sharedmock.NewMockCardRepository(s.ctrl)
	s.catalog = sharedmock.NewMockCatalogRepository(s.ctrl)
	s.orders = sharedmock.NewMockOrderRepository(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC))

	s.tx.EXPECT().Cards().Return(s.cards).AnyTimes()
	s.tx.EXPECT().Catalog().Return(s.catalog).AnyTimes()
	s.tx.EXPECT().Orders().Return(s.orders).AnyTimes()

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		},
	).AnyTimes()

	cfg := config.NewTestConfig()
	s.commands = commands.NewOrderCommands(s.uow, s.clock, cfg)
}

func (s *OrderCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrderCommandsSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsTestSuite))
}

func (s *OrderCommandsTestSuite) expectCardFound(cardNumber string) {
	s.cards.EXPECT().FindByNumber(gomock.Any(), cardNumber).
		Return(&shared.CardSnapshot{ID: uuid.New(), CardNumber: cardNumber, Balance: decimal.Zero}, nil)
}

func (s *OrderCommandsTestSuite) expectItem(id uuid.UUID, price string) {
	s.catalog.EXPECT().FindByID(gomock.Any(), id).
		Return(&shared.CatalogItemSnapshot{ID: id, Name: "Americano", Price: decimal.RequireFromString(price)}, nil)
}

func (s *OrderCommandsTestSuite) TestPlaceOrder() {
	s.Run("single item order gets first number of the day", func() {
		itemID := uuid.New()
		s.expectCardFound("CARD-1")
		s.orders.EXPECT().FindGroupByNumber(gomock.Any(), "2025-03-090000").Return(nil, errNotFound)
		s.orders.EXPECT().CreateGroup(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		s.expectItem(itemID, "4.50")
		s.orders.EXPECT().CreateLine(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, line *order.Line) (uuid.UUID, error) {
				s.Equal(int64(2), line.Quantity())
				s.True(decimal.RequireFromString("9.00").Equal(line.Price()))
				return line.ID(), nil
			})
		s.catalog.EXPECT().AddHits(gomock.Any(), itemID, int64(2)).Return(nil)
		s.orders.EXPECT().UpdateGroupTotal(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, total decimal.Decimal) error {
				s.True(decimal.RequireFromString("9.00").Equal(total))
				return nil
			})

		result, err := s.commands.PlaceOrder(context.Background(), "CARD-1",
			[]commands.PlaceOrderItem{{ItemID: itemID, Quantity: 2}})

		s.Require().NoError(err)
		s.Equal("2025-03-090000", result.Number)
		s.True(decimal.RequireFromString("9.00").Equal(result.TotalPrice))
	})

	s.Run("taken numbers are skipped in sequence order", func() {
		itemID := uuid.New()
		s.expectCardFound("CARD-1")
		taken := &shared.OrderGroupSnapshot{ID: uuid.New()}
		s.orders.EXPECT().FindGroupByNumber(gomock.Any(), "2025-03-090000").Return(taken, nil)
		s.orders.EXPECT().FindGroupByNumber(gomock.Any(), "2025-03-090001").Return(taken, nil)
		s.orders.EXPECT().FindGroupByNumber(gomock.Any(), "2025-03-090002").Return(nil, errNotFound)
		s.orders.EXPECT().CreateGroup(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		s.expectItem(itemID, "1.00")
		s.orders.EXPECT().CreateLine(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		s.catalog.EXPECT().AddHits(gomock.Any(), itemID, int64(1)).Return(nil)
		s.orders.EXPECT().UpdateGroupTotal(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.commands.PlaceOrder(context.Background(), "CARD-1",
			[]commands.PlaceOrderItem{{ItemID: itemID, Quantity: 1}})

		s.Require().NoError(err)
		s.Equal("2025-03-090002", result.Number)
	})

	s.Run("lost insert race moves to the next sequence", func() {
		itemID := uuid.New()
		s.expectCardFound("CARD-1")
		s.orders.EXPECT().FindGroupByNumber(gomock.Any(), "2025-03-090000").Return(nil, errNotFound)
		s.orders.EXPECT().CreateGroup(gomock.Any(), gomock.Any()).Return(uuid.Nil, errDuplicate)
		s.orders.EXPECT().FindGroupByNumber(gomock.Any(), "2025-03-090001").Return(nil, errNotFound)
		s.orders.EXPECT().CreateGroup(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		s.expectItem(itemID, "1.00")
		s.orders.EXPECT().CreateLine(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		s.catalog.EXPECT().AddHits(gomock.Any(), itemID, int64(1)).Return(nil)
		s.orders.EXPECT().UpdateGroupTotal(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.commands.PlaceOrder(context.Background(), "CARD-1",
			[]commands.PlaceOrderItem{{ItemID: itemID, Quantity: 1}})

		s.Require().NoError(err)
		s.Equal("2025-03-090001", result.Number)
	})

	s.Run("repeated item IDs stay separate lines and the total is exact", func() {
		itemID := uuid.New()
		otherID := uuid.New()
		s.expectCardFound("CARD-1")
		s.orders.EXPECT().FindGroupByNumber(gomock.Any(), gomock.Any()).Return(nil, errNotFound)
		s.orders.EXPECT().CreateGroup(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

		s.expectItem(itemID, "0.10")
		s.expectItem(otherID, "0.20")
		s.expectItem(itemID, "0.10")
		s.orders.EXPECT().CreateLine(gomock.Any(), gomock.Any()).Return(uuid.New(), nil).Times(3)
		s.catalog.EXPECT().AddHits(gomock.Any(), itemID, int64(1)).Return(nil).Times(2)
		s.catalog.EXPECT().AddHits(gomock.Any(), otherID, int64(1)).Return(nil)
		s.orders.EXPECT().UpdateGroupTotal(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.commands.PlaceOrder(context.Background(), "CARD-1",
			[]commands.PlaceOrderItem{
				{ItemID: itemID, Quantity: 1},
				{ItemID: otherID, Quantity: 1},
				{ItemID: itemID, Quantity: 1},
			})

		s.Require().NoError(err)
		// 0.1+0.2+0.1 must come out as exactly 0.40
		s.True(decimal.RequireFromString("0.40").Equal(result.TotalPrice))
	})

	s.Run("unknown card", func() {
		s.cards.EXPECT().FindByNumber(gomock.Any(), "NOPE").Return(nil, errNotFound)

		_, err := s.commands.PlaceOrder(context.Background(), "NOPE",
			[]commands.PlaceOrderItem{{ItemID: uuid.New(), Quantity: 1}})

		s.ErrorIs(err, commands.ErrCardNotFound)
	})

	s.Run("unknown item aborts the whole order", func() {
		itemID := uuid.New()
		s.expectCardFound("CARD-1")
		s.orders.EXPECT().FindGroupByNumber(gomock.Any(), gomock.Any()).Return(nil, errNotFound)
		s.orders.EXPECT().CreateGroup(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		s.catalog.EXPECT().FindByID(gomock.Any(), itemID).Return(nil, errNotFound)

		_, err := s.commands.PlaceOrder(context.Background(), "CARD-1",
			[]commands.PlaceOrderItem{{ItemID: itemID, Quantity: 1}})

		s.ErrorIs(err, commands.ErrItemNotFound)
	})

	s.Run("empty order", func() {
		_, err := s.commands.PlaceOrder(context.Background(), "CARD-1", nil)
		s.ErrorIs(err, commands.ErrEmptyOrder)
	})

	s.Run("negative quantity", func() {
		_, err := s.commands.PlaceOrder(context.Background(), "CARD-1",
			[]commands.PlaceOrderItem{{ItemID: uuid.New(), Quantity: -1}})
		s.ErrorIs(err, commands.ErrInvalidQuantity)
	})
}

func (s *OrderCommandsTestSuite) TestAllocatorExhaustion() {
	cfg := config.NewTestConfig()
	cfg.Order.MaxAllocRetries = 3
	cmds := commands.NewOrderCommands(s.uow, s.clock, cfg)

	itemID := uuid.New()
	s.expectCardFound("CARD-1")
	taken := &shared.OrderGroupSnapshot{ID: uuid.New()}
	s.orders.EXPECT().FindGroupByNumber(gomock.Any(), gomock.Any()).Return(taken, nil).Times(3)

	_, err := cmds.PlaceOrder(context.Background(), "CARD-1",
		[]commands.PlaceOrderItem{{ItemID: itemID, Quantity: 1}})

	s.ErrorIs(err, commands.ErrOrderNumberExhausted)
}
