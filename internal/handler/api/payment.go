package api

import (
	"errors"
	"net/http"

	reqdto "coffee-order-api/internal/handler/dto/request"
	resdto "coffee-order-api/internal/handler/dto/response"
	"coffee-order-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
	}
}

// @Summary Pay order
// @Description Charge an order's total against a card
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.PayRequest true "Order number and card number"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /v1/payments [post]
func (h *PaymentHandler) Pay(c *gin.Context) {
	var req reqdto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.paymentCommands.Pay(c.Request.Context(), req.OrderNumber, req.CardNumber)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, commands.ErrInvalidCharge):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid payment request",
			})
		case errors.Is(err, commands.ErrChargeFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Charge was declined",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPayResult(result))
}
