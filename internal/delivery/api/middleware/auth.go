package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "proptrust/internal/delivery/context"
	"proptrust/internal/domain/entity"
	domainerrors "proptrust/internal/domain/errors"
	"proptrust/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	contextKeyActor = "actor"
	bearerPrefix    = "Bearer "
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenSvc service.TokenService
	Logger   *slog.Logger
}

// AuthMiddleware provides middleware for JWT authentication and role checks.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenSvc, logger: params.Logger}
}

// Authenticate validates the bearer access token and stores the caller as an entity.Actor.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || tokenString == "" {
			return domainerrors.ErrTokenInvalid.WithDetails("authorization header must be a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Rejected access token",
				slog.Any("error", err),
			)

			return domainerrors.ErrTokenInvalid
		}

		c.Set(contextKeyActor, entity.Actor{
			ID:    claims.AccountID,
			Roles: entity.RolesFromStrings(claims.Roles),
		})
		deliverycontext.SetActor(c, claims.AccountID, m.logger)

		return next(c)
	}
}

// RequireRole rejects callers that hold none of the given roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}

			for _, role := range roles {
				if actor.Roles.Contains(role) {
					return next(c)
				}
			}

			return domainerrors.ErrForbidden
		}
	}
}

// GetActor returns the authenticated caller stored by Authenticate.
func GetActor(c echo.Context) (entity.Actor, bool) {
	actor, ok := c.Get(contextKeyActor).(entity.Actor)
	if !ok || actor.ID == uuid.Nil {
		return entity.Actor{}, false
	}

	return actor, true
}

// GetUserID returns the id of the authenticated caller.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	actor, ok := GetActor(c)

	return actor.ID, ok
}
