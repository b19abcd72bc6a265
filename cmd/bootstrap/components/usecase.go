package components

import (
	"coffee-order-api/internal/infra/gateway"
	"coffee-order-api/internal/pkg/clock"
	"coffee-order-api/internal/usecase/commands"
	"coffee-order-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	gateway.NewLoggingPaymentGateway,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCatalogCommands,
		commands.NewLoyaltyCommands,
		commands.NewOrderCommands,
		commands.NewProductCommands,
		commands.NewPaymentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewOrderQueries,
		queries.NewProductQueries,
	),
)
