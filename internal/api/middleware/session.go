package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meridian-trust/staff-portal/internal/api/metrics"
	"github.com/meridian-trust/staff-portal/internal/core/domain"
	"github.com/meridian-trust/staff-portal/internal/core/ports"
)

// SessionCookie is the cookie carrying the opaque session token. The token is
// the only thing the client ever holds; identity and role live server-side.
const SessionCookie = "portal_session"

// LoginPath is where unauthenticated callers are redirected. The login form
// itself is rendered by the page layer, not this service.
const LoginPath = "/login"

// RequireSession admits any authenticated role and injects the resolved
// identity into the request context. Callers without a valid session are
// redirected to the login entry point.
func RequireSession(gate ports.AuthorizationGate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := gate.Authorize(c.Request().Context(), sessionToken(c), "")
			switch {
			case errors.Is(err, domain.ErrNoSession):
				metrics.AuthDenialsTotal.WithLabelValues("no_session").Inc()
				return c.Redirect(http.StatusSeeOther, LoginPath)
			case err != nil:
				return err
			}

			c.Set("username", identity.Username)
			c.Set("role", identity.Role)
			return next(c)
		}
	}
}

// RequireRole demands one exact role, stated explicitly at the call site. A
// caller with a session but the wrong role gets an access-denied response,
// not a redirect, and no hint of which role would have sufficed.
func RequireRole(gate ports.AuthorizationGate, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			_, err := gate.Authorize(c.Request().Context(), sessionToken(c), role)
			switch {
			case errors.Is(err, domain.ErrNoSession):
				metrics.AuthDenialsTotal.WithLabelValues("no_session").Inc()
				return c.Redirect(http.StatusSeeOther, LoginPath)
			case errors.Is(err, domain.ErrInsufficientRole):
				metrics.AuthDenialsTotal.WithLabelValues("insufficient_role").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "access denied"})
			case err != nil:
				return err
			}
			return next(c)
		}
	}
}

func sessionToken(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}
