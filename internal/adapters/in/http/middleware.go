package http

import (
	"net/http"
	"strings"

	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// actorContextKey is where the authentication middleware stores the verified
// actor on the echo context.
const actorContextKey = "actor"

// AuthMiddleware verifies the bearer token and stores the resulting actor
// on the request context. Requests without a valid token never reach the
// handler.
func AuthMiddleware(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			actor, err := tokens.Verify(strings.TrimPrefix(header, prefix))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid or expired token",
				})
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

// actorFromContext retrieves the actor stored by AuthMiddleware.
func actorFromContext(c echo.Context) (kernel.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(kernel.Actor)
	return actor, ok
}

// requireRole rejects actors of any other role before the handler runs.
func requireRole(role kernel.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := actorFromContext(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}
			if actor.Role() != role {
				return c.JSON(http.StatusForbidden, ErrorResponse{
					Code:    http.StatusForbidden,
					Message: "operation requires role " + role.String(),
				})
			}
			return next(c)
		}
	}
}
