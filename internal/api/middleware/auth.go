package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/campusnet/social-api/internal/api/metrics"
	"github.com/campusnet/social-api/internal/core/domain"
)

// PrincipalKey is the echo context key the authenticated user is stored
// under.
const PrincipalKey = "principal"

// PrincipalResolver maps a bearer token to the account it belongs to.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, token string) (*domain.User, error)
}

// Auth extracts the bearer token, resolves the principal, and injects it
// into the request context. Every failure is a 401; the response does not
// say which check failed.
func Auth(resolver PrincipalResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			principal, err := resolver.ResolvePrincipal(c.Request().Context(), parts[1])
			if err != nil {
				metrics.TokensRejectedTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}
