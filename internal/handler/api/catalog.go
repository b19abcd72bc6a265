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

type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewCatalogHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary Register coffee
// @Description Register a new coffee on the menu
// @Tags coffee
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterCoffeeRequest true "Coffee to register"
// @Success 201 {object} resdto.RegisteredResponse
// @Failure 400 {object} map[string]string
// @Router /v1/coffee [post]
func (h *CatalogHandler) Register(c *gin.Context) {
	var req reqdto.RegisterCoffeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.catalogCommands.Register(c.Request.Context(), req.Name, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCatalogItem):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid coffee name or price",
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

// @Summary List coffee
// @Description List all coffee on the menu
// @Tags coffee
// @Produce json
// @Success 200 {array} resdto.CoffeeResponse
// @Router /v1/coffee [get]
func (h *CatalogHandler) List(c *gin.Context) {
	views, err := h.catalogQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.CoffeeResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromCatalogItemView(v)
	}

	c.JSON(http.StatusOK, response)
}
