package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"coffee-order-api/internal/handler/api"
	"coffee-order-api/internal/handler/middleware"
	"coffee-order-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	catalogHandler *api.CatalogHandler,
	loyaltyHandler *api.LoyaltyHandler,
	orderHandler *api.OrderHandler,
	productHandler *api.ProductHandler,
	paymentHandler *api.PaymentHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, catalogHandler, loyaltyHandler, orderHandler, productHandler, paymentHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	catalogHandler *api.CatalogHandler,
	loyaltyHandler *api.LoyaltyHandler,
	orderHandler *api.OrderHandler,
	productHandler *api.ProductHandler,
	paymentHandler *api.PaymentHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := engine.Group("/v1")
	{
		coffee := v1.Group("/coffee")
		{
			addRoutes(coffee, []route{
				{Method: http.MethodPost, Path: "", Handler: catalogHandler.Register},
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.List},
				{Method: http.MethodPost, Path: "/order", Handler: orderHandler.Place},
				{Method: http.MethodGet, Path: "/order/:number", Handler: orderHandler.GetByNumber},
			})
		}

		point := v1.Group("/point")
		{
			addRoutes(point, []route{
				{Method: http.MethodPost, Path: "", Handler: loyaltyHandler.Register},
				{Method: http.MethodPatch, Path: "/refill", Handler: loyaltyHandler.Refill},
				{Method: http.MethodPatch, Path: "/redeem", Handler: loyaltyHandler.Redeem},
			})
		}

		products := v1.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodPost, Path: "", Handler: productHandler.Add},
				{Method: http.MethodGet, Path: "/:id", Handler: productHandler.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: productHandler.Update},
			})
		}

		payments := v1.Group("/payments")
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "", Handler: paymentHandler.Pay},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
