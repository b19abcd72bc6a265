//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"coffee-order-api/internal/handler/api"
	"coffee-order-api/internal/usecase/commands"
	"coffee-order-api/internal/usecase/queries"
	"coffee-order-api/tests/common/builder"
	"coffee-order-api/tests/common/httptest"
	"coffee-order-api/tests/common/testutil"
	commandsmock "coffee-order-api/tests/mock/commands"
	queriesmock "coffee-order-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/v1/coffee/order", s.handler.Place)
	s.router.GET("/v1/coffee/order/:number", s.handler.GetByNumber)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) TestPlace() {
	url := "/v1/coffee/order"

	reqBody := builder.NewOrderBuilder().BuildPlaceRequestDTO()
	expectedResult := &commands.PlaceOrderResult{
		GroupID:    uuid.New(),
		Number:     "2025-03-090000",
		TotalPrice: decimal.RequireFromString("9.00"),
	}

	s.Run("success: returns 200 with number and total", func() {
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), reqBody.CardNumber, gomock.Any()).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2025-03-090000", body["order_number"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing card number", mutate: testutil.Field("card_number", nil)},
			{name: "missing items", mutate: testutil.Field("items", nil)},
			{name: "empty items", mutate: testutil.Field("items", []any{})},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "card not found",
				commandsError:  commands.ErrCardNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Card not found",
			},
			{
				name:           "item not found",
				commandsError:  commands.ErrItemNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Coffee not found",
			},
			{
				name:           "invalid quantity",
				commandsError:  commands.ErrInvalidQuantity,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid order items",
			},
			{
				name:           "number space exhausted",
				commandsError:  commands.ErrOrderNumberExhausted,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "No order numbers left",
			},
			{
				name:           "internal error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *OrderHandlerTestSuite) TestGetByNumber() {
	number := "2025-03-090000"
	url := "/v1/coffee/order/" + number

	s.Run("success: returns group with lines", func() {
		view := &queries.OrderGroupView{
			ID:         uuid.New(),
			Number:     number,
			TotalPrice: decimal.RequireFromString("9.00"),
			CreatedAt:  time.Now(),
			Lines: []queries.OrderLineView{
				{ID: uuid.New(), ItemID: uuid.New(), ItemName: "Americano", Quantity: 2, LinePrice: decimal.RequireFromString("9.00")},
			},
		}
		s.mockQueries.EXPECT().GetByNumber(gomock.Any(), number).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(number, body["order_number"])
		s.Len(body["lines"], 1)
	})

	s.Run("error: 404 when order does not exist", func() {
		s.mockQueries.EXPECT().GetByNumber(gomock.Any(), number).
			Return(nil, queries.ErrOrderGroupNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}
