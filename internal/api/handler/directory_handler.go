package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meridian-trust/staff-portal/internal/core/domain"
	"github.com/meridian-trust/staff-portal/internal/core/ports"
)

type DirectoryHandler struct {
	directory ports.DirectoryService
}

func NewDirectoryHandler(directory ports.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

type directorySearchRequest struct {
	Search string `query:"search" validate:"omitempty,max=64"`
}

type directorySearchResponse struct {
	Query   string               `json:"query"`
	Results []domain.StaffMember `json:"results"`
}

// Search looks up staff members by name.
//
// @Summary      Staff directory lookup
// @Tags         internal
// @Produce      json
// @Param        search  query     string  false  "Name to search for"
// @Success      200     {object}  directorySearchResponse
// @Failure      400     {object}  map[string]string
// @Router       /internal/directory [get]
func (h *DirectoryHandler) Search(c echo.Context) error {
	var req directorySearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	results, err := h.directory.Search(c.Request().Context(), req.Search)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, directorySearchResponse{
		Query:   req.Search,
		Results: results,
	})
}
