package components

import (
	"promo-bonus-service/internal/handler"
	"promo-bonus-service/internal/handler/api"
	"promo-bonus-service/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCodeHandler,
		api.NewLedgerHandler,
		api.NewWebhookHandler,
		middleware.NewRateLimiter,
		func(code *api.CodeHandler, ledger *api.LedgerHandler, webhook *api.WebhookHandler) handler.Handlers {
			return handler.Handlers{Code: code, Ledger: ledger, Webhook: webhook}
		},
	),
	fx.Invoke(handler.NewRouter),
)
