//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"coffee-order-api/internal/domain/payment"
	"coffee-order-api/internal/pkg/clock"
	"coffee-order-api/internal/pkg/errs"
	"coffee-order-api/internal/usecase/commands"
	"coffee-order-api/internal/usecase/shared"
	commandsmock "coffee-order-api/tests/mock/commands"
	sharedmock "coffee-order-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	orders   *sharedmock.MockOrderRepository
	payments *sharedmock.MockPaymentRepository
	gateway  *commandsmock.MockPaymentGateway

	commands commands.PaymentCommands
}

func (s *PaymentCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.orders = sharedmock.NewMockOrderRepository(s.ctrl)
	s.payments = sharedmock.NewMockPaymentRepository(s.ctrl)
	s.gateway = commandsmock.NewMockPaymentGateway(s.ctrl)

	s.tx.EXPECT().Orders().Return(s.orders).AnyTimes()
	s.tx.EXPECT().Payments().Return(s.payments).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		},
	).AnyTimes()

	mockClock := clock.NewMockClock(time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC))
	s.commands = commands.NewPaymentCommands(s.uow, s.gateway, mockClock)
}

func (s *PaymentCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPaymentCommandsSuite(t *testing.T) {
	suite.Run(t, new(PaymentCommandsTestSuite))
}

func (s *PaymentCommandsTestSuite) group(total string) *shared.OrderGroupSnapshot {
	return &shared.OrderGroupSnapshot{
		ID:         uuid.New(),
		Number:     "2025-03-090000",
		TotalPrice: decimal.RequireFromString(total),
		CreatedAt:  time.Now(),
	}
}

func (s *PaymentCommandsTestSuite) TestPay() {
	s.Run("charges the group total and persists the payment", func() {
		s.orders.EXPECT().FindGroupByNumber(gomock.Any(), "2025-03-090000").Return(s.group("9.00"), nil)
		s.gateway.EXPECT().Charge(gomock.Any(), "4242", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, amount decimal.Decimal) error {
				s.True(decimal.RequireFromString("9.00").Equal(amount))
				return nil
			})
		s.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *payment.Payment) (uuid.UUID, error) {
				s.Equal("2025-03-090000", p.OrderNumber())
				s.True(decimal.RequireFromString("9.00").Equal(p.Amount()))
				return p.ID(), nil
			})

		result, err := s.commands.Pay(context.Background(), "2025-03-090000", "4242")

		s.Require().NoError(err)
		s.Equal("9", result.Amount)
	})

	s.Run("unknown order", func() {
		s.orders.EXPECT().FindGroupByNumber(gomock.Any(), "NOPE").Return(nil, errNotFound)

		_, err := s.commands.Pay(context.Background(), "NOPE", "4242")
		s.ErrorIs(err, commands.ErrOrderNotFound)
	})

	s.Run("declined charge rolls back without persisting", func() {
		s.orders.EXPECT().FindGroupByNumber(gomock.Any(), "2025-03-090000").Return(s.group("9.00"), nil)
		s.gateway.EXPECT().Charge(gomock.Any(), gomock.Any(), gomock.Any()).Return(errs.New("declined"))
		// no Payments().Create expected

		_, err := s.commands.Pay(context.Background(), "2025-03-090000", "4242")
		s.ErrorIs(err, commands.ErrChargeFailed)
	})

	s.Run("empty card number", func() {
		s.orders.EXPECT().FindGroupByNumber(gomock.Any(), "2025-03-090000").Return(s.group("9.00"), nil)

		_, err := s.commands.Pay(context.Background(), "2025-03-090000", "  ")
		s.ErrorIs(err, commands.ErrInvalidCharge)
	})
}
