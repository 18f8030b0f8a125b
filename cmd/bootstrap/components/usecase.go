package components

import (
	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCartUseCase,
		commands.NewShortlistUseCase,
		commands.NewCheckoutUseCase,
		commands.NewNotificationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSessionStateQueries,
		queries.NewCatalogQueries,
	),
)
