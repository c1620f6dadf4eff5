// Package health reports whether the process can reach its backing stores.
package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "proptrust/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const checkTimeout = 2 * time.Second

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
)

// Params holds dependencies for Handler, injected by Fx.
type Params struct {
	fx.In

	DB     *gorm.DB
	Redis  *redis.Client `optional:"true"`
	Logger *slog.Logger
}

// Handler serves GET /health.
type Handler struct {
	db     *gorm.DB
	redis  *redis.Client
	logger *slog.Logger
}

// Report is the body of a health response.
type Report struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// NewHandler is the constructor for Handler.
func NewHandler(params Params) *Handler {
	return &Handler{
		db:     params.DB,
		redis:  params.Redis,
		logger: params.Logger,
	}
}

// Check pings the database and, when configured, Redis. Any failure answers 503.
func (h *Handler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), checkTimeout)
	defer cancel()

	report := Report{Status: statusOK, Checks: map[string]string{}}
	h.record(ctx, &report, "postgres", h.pingDB)
	if h.redis != nil {
		h.record(ctx, &report, "redis", func(ctx context.Context) error {
			return h.redis.Ping(ctx).Err()
		})
	}

	code := http.StatusOK
	if report.Status != statusOK {
		code = http.StatusServiceUnavailable
	}

	return c.JSON(code, report)
}

func (h *Handler) pingDB(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

func (h *Handler) record(ctx context.Context, report *Report, name string, check func(context.Context) error) {
	if err := check(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Health check failed",
			slog.String("check", name),
			slog.Any("error", err),
		)
		report.Checks[name] = err.Error()
		report.Status = statusDegraded

		return
	}

	report.Checks[name] = statusOK
}
