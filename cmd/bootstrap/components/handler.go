package components

import (
	"storefront-engine/internal/handler"
	"storefront-engine/internal/handler/api"
	"storefront-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewSessionHandler,
		middleware.NewSessionMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	catalog *api.CatalogHandler,
	cart *api.CartHandler,
	checkout *api.CheckoutHandler,
	session *api.SessionHandler,
) handler.Handlers {
	return handler.Handlers{
		Catalog:  catalog,
		Cart:     cart,
		Checkout: checkout,
		Session:  session,
	}
}
