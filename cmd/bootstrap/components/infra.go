package components

import (
	"storefront-engine/internal/handler/middleware"
	"storefront-engine/internal/infra/cartstore"
	"storefront-engine/internal/infra/credential"
	"storefront-engine/internal/infra/storeapi"
	"storefront-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	credentialModule,
	storeAPIModule,
	cartStoreModule,
)

var credentialModule = fx.Module("infra/credential",
	fx.Provide(
		fx.Annotate(
			credential.NewHolder,
			fx.As(new(shared.CredentialSource)),
			fx.As(new(shared.CredentialStore)),
			fx.As(new(middleware.SessionReader)),
		),
	),
)

var storeAPIModule = fx.Module("infra/storeapi",
	fx.Provide(
		fx.Annotate(
			storeapi.NewClient,
			fx.As(new(shared.CatalogGateway)),
			fx.As(new(shared.InventoryGateway)),
		),
	),
)

var cartStoreModule = fx.Module("infra/cartstore",
	fx.Provide(
		fx.Annotate(
			cartstore.NewStore,
			fx.As(new(shared.CartStore)),
		),
	),
)
