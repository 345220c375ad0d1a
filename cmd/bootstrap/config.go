package bootstrap

import (
	"storefront-engine/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.StoreAPIConfig { return cfg.StoreAPI },
		func(cfg config.Config) config.SearchConfig { return cfg.Search },
		func(cfg config.Config) config.CartConfig { return cfg.Cart },
		func(cfg config.Config) config.CheckoutConfig { return cfg.Checkout },
		func(cfg config.Config) config.SessionConfig { return cfg.Session },
	),
)
