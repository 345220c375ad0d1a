package components

import (
	"context"

	"storefront-engine/internal/pkg/clock"
	"storefront-engine/internal/usecase/commands"
	"storefront-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewFeed,
		func(feed *queries.Feed) queries.Publisher { return feed },
		queries.NewSequencer,
		queries.NewCatalogQueries,
	),
	fx.Invoke(registerSequencerShutdown),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCartUseCase,
		commands.NewCheckoutUseCase,
		commands.NewSessionUseCase,
	),
)

func registerSequencerShutdown(lc fx.Lifecycle, sequencer *queries.Sequencer) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			sequencer.Close()
			return nil
		},
	})
}
