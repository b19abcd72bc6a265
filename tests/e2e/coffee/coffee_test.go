//go:build e2e

package coffee_test

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

const coffeeURL = "/v1/coffee"

type CoffeeSuite struct {
	e2e.SharedSuite
}

func (s *CoffeeSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestCoffeeSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CoffeeSuite))
}

// =============================================================================
// TestRegisterCoffee - Menu registration API tests
// =============================================================================

func (s *CoffeeSuite) TestRegisterCoffee() {
	s.Run("Normal case: Coffee registered and listed afterwards", func() {
		t := s.T()

		reqBody := builder.NewCoffeeBuilder().
			WithName("Flat White").
			WithPrice("4.80").
			BuildRegisterRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, coffeeURL, reqBody)
		require.Equal(t, http.StatusCreated, w.Code, "Should register coffee successfully")

		var created response.RegisteredResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotEmpty(t, created.ID)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, coffeeURL, nil)
		require.Equal(t, http.StatusOK, lw.Code)

		var listed []response.CoffeeResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &listed))
		require.Len(t, listed, 1)
		require.Equal(t, created.ID, listed[0].ID)
		require.Equal(t, "Flat White", listed[0].Name)
		require.True(t, decimal.RequireFromString("4.80").Equal(listed[0].Price))
	})

	s.Run("Normal case: Sub-cent price survives storage unrounded", func() {
		t := s.T()

		reqBody := builder.NewCoffeeBuilder().
			WithName("Single Origin").
			WithPrice("3.333").
			BuildRegisterRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, coffeeURL, reqBody)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.RegisteredResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		var stored decimal.Decimal
		err := s.DB.QueryRow(context.Background(),
			"SELECT price FROM catalog_items WHERE id = $1", created.ID).Scan(&stored)
		require.NoError(t, err)
		require.True(t, decimal.RequireFromString("3.333").Equal(stored),
			"Price must keep all three decimals, got %s", stored)
	})

	s.Run("Error case: Blank name rejected with 400", func() {
		t := s.T()

		reqBody := builder.NewCoffeeBuilder().WithName("   ").BuildRegisterRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, coffeeURL, reqBody)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: Negative price rejected with 400", func() {
		t := s.T()

		reqBody := builder.NewCoffeeBuilder().WithPrice("-1.00").BuildRegisterRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, coffeeURL, reqBody)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestListCoffee - Menu listing API tests
// =============================================================================

func (s *CoffeeSuite) TestListCoffee() {
	s.Run("Normal case: Empty menu returns empty array", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, coffeeURL, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var listed []response.CoffeeResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &listed))
		require.Empty(t, listed)
	})

	s.Run("Normal case: Ordering a coffee bumps its hit counter", func() {
		t := s.T()

		itemID := dbtest.CreateTestCoffee(t, s.DB, "Espresso", "3.00")
		dbtest.CreateTestCard(t, s.DB, "CARD-0001", "100.00")

		reqBody := builder.NewOrderBuilder().
			WithItems(reqdto.OrderLineRequest{ItemID: itemID, Quantity: 2}).
			BuildPlaceRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, coffeeURL+"/order", reqBody)
		require.Equal(t, http.StatusOK, w.Code)

		var hits int64
		err := s.DB.QueryRow(context.Background(),
			"SELECT hits FROM catalog_items WHERE id = $1", itemID).Scan(&hits)
		require.NoError(t, err)
		require.Equal(t, int64(2), hits, "Each ordered cup counts as one hit")
	})
}
