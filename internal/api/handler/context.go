package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusnet/social-api/internal/api/middleware"
	"github.com/campusnet/social-api/internal/core/domain"
)

// principal extracts the authenticated user injected by the Auth middleware
// and fast-fails before any service call: a missing or malformed principal
// means the middleware did not run on this route.
func principal(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.PrincipalKey).(*domain.User)
	if !ok || user == nil || user.ID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
