package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/meridian-trust/staff-portal/internal/core/domain"
)

type stubDirectoryService struct {
	results []domain.StaffMember
}

func (s *stubDirectoryService) Search(_ context.Context, query string) ([]domain.StaffMember, error) {
	if query == "" {
		return []domain.StaffMember{}, nil
	}
	return s.results, nil
}

func TestDirectoryHandler_Search(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewDirectoryHandler(&stubDirectoryService{results: []domain.StaffMember{
		{FullName: "Jane Moreno", Department: "Treasury", RoleTitle: "Analyst"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/internal/directory?search=jane", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp directorySearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Query != "jane" || len(resp.Results) != 1 || resp.Results[0].FullName != "Jane Moreno" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestDirectoryHandler_EmptySearch(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewDirectoryHandler(&stubDirectoryService{})

	req := httptest.NewRequest(http.MethodGet, "/internal/directory", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp directorySearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Results) != 0 {
		t.Fatalf("expected no results, got %+v", resp.Results)
	}
}

func TestDirectoryHandler_RejectsOverlongQuery(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewDirectoryHandler(&stubDirectoryService{})

	long := make([]byte, 80)
	for i := range long {
		long[i] = 'a'
	}
	req := httptest.NewRequest(http.MethodGet, "/internal/directory?search="+string(long), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
