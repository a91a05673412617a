package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meridian-trust/staff-portal/internal/api/metrics"
	"github.com/meridian-trust/staff-portal/internal/api/middleware"
	"github.com/meridian-trust/staff-portal/internal/core/domain"
	"github.com/meridian-trust/staff-portal/internal/core/ports"
)

type AuthHandler struct {
	auth     ports.Authenticator
	sessions ports.SessionManager
}

func NewAuthHandler(auth ports.Authenticator, sessions ports.SessionManager) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

// loginRequest carries the login form fields. Deliberately unvalidated: an
// empty or malformed submission still counts as a login attempt and must be
// audited like any other.
type loginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Login verifies the submitted credentials and establishes a session.
//
// @Summary      Log in
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      303
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	identity, err := h.auth.Authenticate(c.Request().Context(), req.Username, req.Password, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			// Unknown user and wrong password answer identically.
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		case errors.Is(err, domain.ErrStoreUnavailable):
			metrics.LoginsTotal.WithLabelValues("error").Inc()
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "service unavailable"})
		}
		return err
	}

	token, err := h.sessions.Create(c.Request().Context(), identity.Username, identity.Role)
	if err != nil {
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.SessionsCreatedTotal.Inc()

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusSeeOther, "/internal/dashboard")
}

// Logout destroys the caller's session. Safe to call without one.
//
// @Summary      Log out
// @Tags         auth
// @Success      303
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil && cookie.Value != "" {
		if err := h.sessions.Destroy(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
		metrics.SessionsDestroyedTotal.Inc()
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusSeeOther, "/")
}
