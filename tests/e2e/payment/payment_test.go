//go:build e2e

package payment_test

import (
	"context"
	"net/http"
	"testing"

	reqdto "coffee-order-api/internal/handler/dto/request"
	"coffee-order-api/internal/handler/dto/response"
	"coffee-order-api/tests/common/builder"
	"coffee-order-api/tests/common/dbtest"
	"coffee-order-api/tests/common/httptest"
	"coffee-order-api/tests/e2e"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	paymentsURL   = "/v1/payments"
	placeOrderURL = "/v1/coffee/order"
)

type PaymentSuite struct {
	e2e.SharedSuite
}

func (s *PaymentSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestPaymentSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PaymentSuite))
}

// placeOrder seeds a menu item plus card and places one order, returning its number.
func (s *PaymentSuite) placeOrder(price string, quantity int64) string {
	t := s.T()

	itemID := dbtest.CreateTestCoffee(t, s.DB, "Espresso", price)
	dbtest.CreateTestCard(t, s.DB, "CARD-0001", "100.00")

	reqBody := builder.NewOrderBuilder().
		WithItems(reqdto.OrderLineRequest{ItemID: itemID, Quantity: quantity}).
		BuildPlaceRequestDTO()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, placeOrderURL, reqBody)
	require.Equal(t, http.StatusOK, w.Code)

	var placed response.PlacedOrderResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &placed))
	return placed.OrderNumber
}

// =============================================================================
// TestPayOrder - Payment API tests
// =============================================================================

func (s *PaymentSuite) TestPayOrder() {
	s.Run("Normal case: Order total charged and payment recorded", func() {
		t := s.T()

		orderNumber := s.placeOrder("3.00", 3)

		reqBody := reqdto.PayRequest{OrderNumber: orderNumber, CardNumber: "4242424242424242"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, reqBody)
		require.Equal(t, http.StatusOK, w.Code, "Should charge the order successfully")

		var paid response.PaymentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &paid))
		require.NotEmpty(t, paid.PaymentID)
		require.True(t, decimal.RequireFromString("9.00").Equal(decimal.RequireFromString(paid.Amount)),
			"Charged amount must equal the order total, got %s", paid.Amount)

		var amount decimal.Decimal
		err := s.DB.QueryRow(context.Background(),
			"SELECT amount FROM payments WHERE order_number = $1", orderNumber).Scan(&amount)
		require.NoError(t, err)
		require.True(t, decimal.RequireFromString("9.00").Equal(amount))
	})

	s.Run("Error case: Unknown order number returns 404", func() {
		t := s.T()

		reqBody := reqdto.PayRequest{OrderNumber: "2099-01-010000", CardNumber: "4242424242424242"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, reqBody)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Error case: Missing card number rejected with 400", func() {
		t := s.T()

		orderNumber := s.placeOrder("3.00", 1)

		reqBody := map[string]string{"order_number": orderNumber}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, reqBody)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var count int
		err := s.DB.QueryRow(context.Background(), "SELECT COUNT(*) FROM payments").Scan(&count)
		require.NoError(t, err)
		require.Zero(t, count, "Rejected payment must not be recorded")
	})
}
