package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meridian-trust/staff-portal/internal/core/domain"
	"github.com/meridian-trust/staff-portal/internal/core/ports"
)

// defaultLogLimit matches the admin log view's page size.
const defaultLogLimit = 20

// AdminHandler serves the admin console's read surfaces. Every route it backs
// sits behind an explicit role=admin gate in the router.
type AdminHandler struct {
	users    ports.CredentialStore
	audit    ports.AuditLog
	sessions ports.SessionManager
}

func NewAdminHandler(users ports.CredentialStore, audit ports.AuditLog, sessions ports.SessionManager) *AdminHandler {
	return &AdminHandler{users: users, audit: audit, sessions: sessions}
}

type overviewResponse struct {
	Users          int64 `json:"users"`
	ActiveSessions int64 `json:"active_sessions"`
}

// Overview returns the admin dashboard counters.
//
// @Summary      Admin overview
// @Tags         admin
// @Produce      json
// @Success      200  {object}  overviewResponse
// @Router       /admin/overview [get]
func (h *AdminHandler) Overview(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.users.CountUsers(ctx)
	if err != nil {
		return err
	}
	sessions, err := h.sessions.ActiveCount(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, overviewResponse{
		Users:          users,
		ActiveSessions: sessions,
	})
}

type adminUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type usersResponse struct {
	Users []adminUser `json:"users"`
}

// Users lists every provisioned account, ordered by role then username.
//
// @Summary      User management list
// @Tags         admin
// @Produce      json
// @Success      200  {object}  usersResponse
// @Router       /admin/users [get]
func (h *AdminHandler) Users(c echo.Context) error {
	users, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]adminUser, 0, len(users))
	for _, u := range users {
		out = append(out, adminUser{ID: u.ID, Username: u.Username, Role: u.Role})
	}
	return c.JSON(http.StatusOK, usersResponse{Users: out})
}

type logsRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

type logsResponse struct {
	Attempts []domain.LoginAttempt `json:"attempts"`
}

// Logs returns the most recent login attempts, newest first. An empty log is
// a 200 with an empty list.
//
// @Summary      Login attempt log
// @Tags         admin
// @Produce      json
// @Param        limit  query     int  false  "Number of attempts to return (default 20)"
// @Success      200    {object}  logsResponse
// @Failure      400    {object}  map[string]string
// @Router       /admin/logs [get]
func (h *AdminHandler) Logs(c echo.Context) error {
	var req logsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if req.Limit == 0 {
		req.Limit = defaultLogLimit
	}

	attempts, err := h.audit.Recent(c.Request().Context(), req.Limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logsResponse{Attempts: attempts})
}
