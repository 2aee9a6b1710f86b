package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"promo-bonus-service/internal/handler/api"
	"promo-bonus-service/internal/handler/middleware"
	"promo-bonus-service/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Code    *api.CodeHandler
	Ledger  *api.LedgerHandler
	Webhook *api.WebhookHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, limiter *middleware.RateLimiter, gatherer prometheus.Gatherer) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, limiter, gatherer)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, limiter *middleware.RateLimiter, gatherer prometheus.Gatherer) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	root := engine.Group("")
	{
		// Public storefront endpoint, throttled per client
		addRoutes(root, []route{
			{Method: http.MethodGet, Path: "/code", Handler: h.Code.Allocate, Mw: []gin.HandlerFunc{limiter.Middleware()}},
		})

		addRoutes(root, []route{
			{Method: http.MethodPost, Path: "/order-reserve", Handler: h.Ledger.Reserve},
			{Method: http.MethodPost, Path: "/order-complete", Handler: h.Ledger.Complete},
			{Method: http.MethodPost, Path: "/order-cancel", Handler: h.Ledger.Cancel},
			{Method: http.MethodPost, Path: "/bonus-accrue", Handler: h.Ledger.Accrue},
			{Method: http.MethodGet, Path: "/balance", Handler: h.Ledger.Balance},
			{Method: http.MethodPost, Path: "/webhook", Handler: h.Webhook.Handle},
			{Method: http.MethodPost, Path: "/lead-reserve", Handler: h.Webhook.LeadReserve},
		})

		addRoutes(root, []route{
			{Method: http.MethodGet, Path: "/pools/:denomination", Handler: h.Code.GetPool},
			{Method: http.MethodPost, Path: "/replenish", Handler: h.Code.Replenish},
			{Method: http.MethodPost, Path: "/replenish-all", Handler: h.Code.ReplenishAll},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
