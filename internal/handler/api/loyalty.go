package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "coffee-order-api/internal/handler/dto/request"
	resdto "coffee-order-api/internal/handler/dto/response"
	"coffee-order-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type LoyaltyHandler struct {
	loyaltyCommands commands.LoyaltyCommands
}

func NewLoyaltyHandler(loyaltyCommands commands.LoyaltyCommands) *LoyaltyHandler {
	return &LoyaltyHandler{
		loyaltyCommands: loyaltyCommands,
	}
}

// @Summary Register loyalty card
// @Description Register a loyalty card, optionally with an initial balance
// @Tags point
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterCardRequest true "Card to register"
// @Success 201 {object} resdto.RegisteredResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /v1/point [post]
func (h *LoyaltyHandler) Register(c *gin.Context) {
	var req reqdto.RegisterCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.loyaltyCommands.Register(c.Request.Context(), req.CardNumber, req.Balance)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCard):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid card number or balance",
			})
		case errors.Is(err, commands.ErrDuplicateCardNumber):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Card number already registered",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.RegisteredResponse{ID: id})
}

// @Summary Refill points
// @Description Add points to a loyalty card
// @Tags point
// @Accept json
// @Produce json
// @Param request body reqdto.AdjustBalanceRequest true "Card number and amount"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /v1/point/refill [patch]
func (h *LoyaltyHandler) Refill(c *gin.Context) {
	h.adjustBalance(c, h.loyaltyCommands.Refill)
}

// @Summary Redeem points
// @Description Deduct points from a loyalty card
// @Tags point
// @Accept json
// @Produce json
// @Param request body reqdto.AdjustBalanceRequest true "Card number and amount"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /v1/point/redeem [patch]
func (h *LoyaltyHandler) Redeem(c *gin.Context) {
	h.adjustBalance(c, h.loyaltyCommands.Redeem)
}

func (h *LoyaltyHandler) adjustBalance(c *gin.Context, op func(ctx context.Context, cardNumber string, amount decimal.Decimal) error) {
	var req reqdto.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := op(c.Request.Context(), req.CardNumber, req.Amount); err != nil {
		switch {
		case errors.Is(err, commands.ErrCardNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Card not found",
			})
		case errors.Is(err, commands.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Amount must be positive",
			})
		case errors.Is(err, commands.ErrInsufficientBalance):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Insufficient point balance",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
