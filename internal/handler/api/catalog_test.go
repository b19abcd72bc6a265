//go:build unit

package api_test

import (
	"net/http"
	"testing"

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

type CatalogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	mockQueries  *queriesmock.MockCatalogQueries
	handler      *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/v1/coffee", s.handler.Register)
	s.router.GET("/v1/coffee", s.handler.List)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestRegister() {
	url := "/v1/coffee"
	reqBody := builder.NewCoffeeBuilder().BuildRegisterRequestDTO()

	s.Run("success: returns 201 Created", func() {
		itemID := uuid.New()
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody.Name, gomock.Any()).
			Return(itemID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(itemID.String(), body["id"])
	})

	s.Run("error: 400 when name is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("name", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on invalid item", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrInvalidCatalogItem).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid coffee")
	})
}

func (s *CatalogHandlerTestSuite) TestList() {
	url := "/v1/coffee"

	s.Run("success: returns all items", func() {
		views := []*queries.CatalogItemView{
			{ID: uuid.New(), Name: "Americano", Price: decimal.RequireFromString("4.50")},
			{ID: uuid.New(), Name: "Latte", Price: decimal.RequireFromString("5.00")},
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal("Americano", body[0]["name"])
	})

	s.Run("success: empty catalog returns empty array", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.CatalogItemView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})
}
