package api

import (
	"log/slog"

	"proptrust/config"
	"proptrust/internal/delivery"
	apimiddleware "proptrust/internal/delivery/api/middleware"
	"proptrust/internal/delivery/api/router"
	"proptrust/internal/delivery/api/validator"
	"proptrust/internal/delivery/httpserver"

	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the listing pipeline API. It serves h2c on the configured HTTP port.
func NewServer(params ServerParams) delivery.Delivery {
	e := httpserver.NewEcho(params.Cfg, params.Logger)
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return httpserver.New(params.Lc, e, params.Logger, httpserver.Options{
		Name: "api",
		Port: params.Cfg.HTTP.Port,
		H2C:  true,
	})
}
