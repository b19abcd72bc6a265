package api

import (
	"errors"
	"net/http"

	reqdto "coffee-order-api/internal/handler/dto/request"
	resdto "coffee-order-api/internal/handler/dto/response"
	"coffee-order-api/internal/usecase/commands"
	"coffee-order-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary Place order
// @Description Place a coffee order against a loyalty card
// @Tags order
// @Accept json
// @Produce json
// @Param request body reqdto.PlaceOrderRequest true "Order request"
// @Success 200 {object} resdto.PlacedOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /v1/coffee/order [post]
func (h *OrderHandler) Place(c *gin.Context) {
	var req reqdto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.orderCommands.PlaceOrder(c.Request.Context(), req.CardNumber, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCardNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Card not found",
			})
		case errors.Is(err, commands.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coffee not found",
			})
		case errors.Is(err, commands.ErrInvalidQuantity), errors.Is(err, commands.ErrEmptyOrder):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid order items",
			})
		case errors.Is(err, commands.ErrOrderNumberExhausted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No order numbers left for today",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPlaceOrderResult(result))
}

// @Summary Get order
// @Description Get an order with its lines by order number
// @Tags order
// @Produce json
// @Param number path string true "Order number"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Router /v1/coffee/order/{number} [get]
func (h *OrderHandler) GetByNumber(c *gin.Context) {
	number := c.Param("number")

	view, err := h.orderQueries.GetByNumber(c.Request.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOrderGroupNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderGroupView(view))
}
