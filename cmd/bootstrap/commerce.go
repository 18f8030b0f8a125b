package bootstrap

import (
	"storefront-api/internal/infra/commerce"
	"storefront-api/internal/infra/fetchcache"
	"storefront-api/internal/pkg/config"
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var CommerceModule = fx.Module("commerce",
	fx.Provide(
		// One client behind one circuit breaker serves both the write
		// (checkout) and read (catalog) slices.
		fx.Annotate(
			NewCommerceClient,
			fx.As(new(commands.CommerceGateway)),
			fx.As(new(queries.CatalogGateway)),
		),
		fetchcache.New,
	),
)

func NewCommerceClient(cfg config.Config) *commerce.Client {
	return commerce.NewClient(cfg.Commerce)
}
