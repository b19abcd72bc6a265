package components

import (
	"coffee-order-api/internal/handler"
	"coffee-order-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewLoyaltyHandler,
		api.NewOrderHandler,
		api.NewProductHandler,
		api.NewPaymentHandler,
	),
	fx.Invoke(handler.NewRouter),
)
