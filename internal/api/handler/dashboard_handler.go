package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meridian-trust/staff-portal/internal/core/domain"
	"github.com/meridian-trust/staff-portal/internal/core/ports"
)

// dashboardAttemptLimit caps the caller's own login history shown on the
// landing page.
const dashboardAttemptLimit = 10

type DashboardHandler struct {
	audit ports.AuditLog
}

func NewDashboardHandler(audit ports.AuditLog) *DashboardHandler {
	return &DashboardHandler{audit: audit}
}

type dashboardResponse struct {
	Username       string                `json:"username"`
	Role           string                `json:"role"`
	RecentAttempts []domain.LoginAttempt `json:"recent_attempts"`
}

// Show returns the signed-in identity plus that user's most recent login
// attempts, newest first.
//
// @Summary      Internal dashboard
// @Tags         internal
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Router       /internal/dashboard [get]
func (h *DashboardHandler) Show(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	attempts, err := h.audit.RecentForUser(c.Request().Context(), identity.Username, dashboardAttemptLimit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		Username:       identity.Username,
		Role:           identity.Role,
		RecentAttempts: attempts,
	})
}
