package bootstrap

import (
	"log/slog"
	"net/http"

	"promo-bonus-service/internal/infra/producer"
	"promo-bonus-service/internal/pkg/config"
	"promo-bonus-service/internal/usecase/commands"

	"go.uber.org/fx"
)

var ProducerModule = fx.Module("producer",
	fx.Provide(
		NewCodeProducer,
	),
)

func NewCodeProducer(cfg config.ProducerConfig, logger *slog.Logger) commands.CodeProducer {
	if cfg.Kind == config.ProducerKindHTTP {
		logger.Info("using remote code producer", "url", cfg.URL)
		return producer.NewHTTPProducer(cfg.URL, &http.Client{Timeout: cfg.Timeout})
	}
	logger.Info("using local code generator")
	return producer.NewGenerator()
}
