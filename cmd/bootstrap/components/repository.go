package components

import (
	"log/slog"

	"promo-bonus-service/internal/infra/objstore"
	"promo-bonus-service/internal/infra/repository"
	"promo-bonus-service/internal/pkg/config"
	"promo-bonus-service/internal/usecase/commands"
	"promo-bonus-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewPoolRepository,
			fx.As(new(commands.PoolRepository)),
			fx.As(new(queries.PoolReadStore)),
		),
		fx.Annotate(
			NewLedgerRepository,
			fx.As(new(commands.LedgerRepository)),
			fx.As(new(queries.LedgerReadStore)),
		),
	),
)

func NewLedgerRepository(store objstore.Store, cfg config.BonusConfig, logger *slog.Logger) *repository.LedgerRepository {
	return repository.NewLedgerRepository(store, cfg.HistoryLimit, logger)
}
