package worker

import (
	"log/slog"

	"proptrust/config"
	"proptrust/internal/delivery"
	"proptrust/internal/delivery/health"
	"proptrust/internal/delivery/httpserver"
	"proptrust/internal/delivery/worker/handler"
	"proptrust/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc            fx.Lifecycle
	Cfg           *config.Config
	Logger        *slog.Logger
	PushHandler   *handler.PushHandler
	HealthHandler *health.Handler
	Registry      *prometheus.Registry
}

// NewServer creates the HTTP server that receives relayed notifications from Pub/Sub.
func NewServer(params ServerParams) delivery.Delivery {
	e := httpserver.NewEcho(params.Cfg, params.Logger)

	e.GET("/health", params.HealthHandler.Check)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(params.Registry)))
	e.POST("/push", params.PushHandler.HandlePush)

	return httpserver.New(params.Lc, e, params.Logger, httpserver.Options{
		Name: "worker",
		Port: params.Cfg.Worker.Port,
	})
}
