package bootstrap

import (
	"promo-bonus-service/internal/pkg/config"
	"promo-bonus-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	ConfigViews,
)

// ConfigViews splits a provided config.Config into the sections components depend on.
var ConfigViews = fx.Provide(
	func(cfg config.Config) config.PoolConfig { return cfg.Pool },
	func(cfg config.Config) config.ProducerConfig { return cfg.Producer },
	func(cfg config.Config) config.BonusConfig { return cfg.Bonus },
	func(cfg config.Config) config.RateLimitConfig { return cfg.RateLimit },
	func(cfg config.Config) shared.RetryPolicy { return shared.NewRetryPolicy(cfg.Retry) },
)
