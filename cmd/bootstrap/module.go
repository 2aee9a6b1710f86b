package bootstrap

import (
	"promo-bonus-service/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	MetricsModule,
	ProducerModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
