package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotes-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
	"github.com/jsamuelsen/quotes-service/internal/platform/telemetry"
)

// DefaultRequestTimeout applies when the configured request timeout is zero.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	Logger        *slog.Logger
	AppConfig     *config.AppConfig
	HealthHandler *handlers.HealthHandler
	QuoteHandler  *handlers.QuoteHandler

	// Timeout is the deadline for quote requests. Zero means
	// DefaultRequestTimeout; a negative value disables it.
	Timeout time.Duration
}

// SetupRouter configures middleware and routes on the engine. Middleware
// runs in this order:
//  1. Recovery
//  2. Request ID
//  3. Correlation ID
//  4. OpenTelemetry tracing and metrics
//  5. Logging (skips /-/)
//
// Routes:
//   - GET /                  welcome text
//   - /quotes                quote API, under the request timeout
//   - /-/live, ready, build, metrics
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(middleware.Recovery(cfg.Logger), middleware.RequestID(), middleware.CorrelationID())
	engine.Use(telemetry.Middleware(cfg.AppConfig.Name)...)
	engine.Use(middleware.Logging(cfg.Logger))

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutes(engine.Group("/-"))
	}

	if cfg.QuoteHandler == nil {
		return
	}

	engine.GET("/", cfg.QuoteHandler.Welcome)

	var extra []gin.HandlerFunc

	switch {
	case cfg.Timeout == 0:
		extra = append(extra, middleware.Timeout(DefaultRequestTimeout))
	case cfg.Timeout > 0:
		extra = append(extra, middleware.Timeout(cfg.Timeout))
	}

	cfg.QuoteHandler.RegisterQuoteRoutes(&engine.RouterGroup, extra...)
}
