package components

import (
	"storefront-api/internal/handler"
	"storefront-api/internal/handler/api"
	"storefront-api/internal/handler/middleware"
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSessionHandler,
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewWebhookHandler,
		api.NewCatalogHandler,
		middleware.NewSessionMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

// NewHandlers assembles the route table's handler set. The wishlist and
// compare handlers share one implementation parameterized by list kind,
// so they are built here instead of injected individually.
func NewHandlers(
	session *api.SessionHandler,
	cart *api.CartHandler,
	checkout *api.CheckoutHandler,
	webhook *api.WebhookHandler,
	catalog *api.CatalogHandler,
	shortlistCmds commands.ShortlistCommands,
	stateQueries queries.SessionStateQueries,
) handler.Handlers {
	return handler.Handlers{
		Session:  session,
		Cart:     cart,
		Wishlist: api.NewWishlistHandler(shortlistCmds, stateQueries),
		Compare:  api.NewCompareHandler(shortlistCmds, stateQueries),
		Checkout: checkout,
		Webhook:  webhook,
		Catalog:  catalog,
	}
}
