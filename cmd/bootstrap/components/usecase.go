package components

import (
	"context"
	"log/slog"

	"promo-bonus-service/internal/pkg/clock"
	"promo-bonus-service/internal/pkg/config"
	"promo-bonus-service/internal/usecase/commands"
	"promo-bonus-service/internal/usecase/queries"

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

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReplenishCommands,
		fx.Annotate(
			NewReplenishTrigger,
			fx.As(new(commands.ReplenishTrigger)),
		),
		commands.NewCodeCommands,
		commands.NewLedgerCommands,
		commands.NewWebhookCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPoolQueries,
		queries.NewBalanceQueries,
	),
)

// NewReplenishTrigger lets in-flight background runs finish on shutdown.
func NewReplenishTrigger(lc fx.Lifecycle, replenish commands.ReplenishCommands, cfg config.ProducerConfig, logger *slog.Logger) *commands.AsyncReplenishTrigger {
	t := commands.NewAsyncReplenishTrigger(replenish, cfg.ReplenishTimeout, logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return t.Stop(ctx)
		},
	})
	return t
}
