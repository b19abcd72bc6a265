package api

import (
	"errors"
	"net/http"

	reqdto "coffee-order-api/internal/handler/dto/request"
	resdto "coffee-order-api/internal/handler/dto/response"
	"coffee-order-api/internal/usecase/commands"
	"coffee-order-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductHandler struct {
	productCommands commands.ProductCommands
	productQueries  queries.ProductQueries
}

func NewProductHandler(productCommands commands.ProductCommands, productQueries queries.ProductQueries) *ProductHandler {
	return &ProductHandler{
		productCommands: productCommands,
		productQueries:  productQueries,
	}
}

// @Summary Add product
// @Description Add a product with an optional discount policy
// @Tags products
// @Accept json
// @Produce json
// @Param request body reqdto.ProductRequest true "Product to add"
// @Success 201 {object} resdto.RegisteredResponse
// @Failure 400 {object} map[string]string
// @Router /v1/products [post]
func (h *ProductHandler) Add(c *gin.Context) {
	var req reqdto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.productCommands.Add(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidProduct):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid product",
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

// @Summary Get product
// @Description Get a product with its selling price
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /v1/products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID format",
		})
		return
	}

	view, err := h.productQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

// @Summary Update product
// @Description Update a product's name, price and discount policy
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body reqdto.ProductRequest true "New product values"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /v1/products/{id} [patch]
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID format",
		})
		return
	}

	var req reqdto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.productCommands.Update(c.Request.Context(), id, req.ToCommand()); err != nil {
		switch {
		case errors.Is(err, commands.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		case errors.Is(err, commands.ErrInvalidProduct):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid product",
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
