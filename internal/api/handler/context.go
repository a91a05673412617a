package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meridian-trust/staff-portal/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the session middleware and
// fast-fails before any service call: a present username and role proves the
// middleware ran on this route.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	username, _ := c.Get("username").(string)
	role, _ := c.Get("role").(string)
	if username == "" || role == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Identity{Username: username, Role: role}, nil
}
