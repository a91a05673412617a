package service

import (
	"context"
	"strings"

	"github.com/meridian-trust/staff-portal/internal/core/domain"
	"github.com/meridian-trust/staff-portal/internal/core/ports"
)

const directorySearchLimit = 50

// DirectoryService answers staff-directory lookups for the internal pages.
type DirectoryService struct {
	directory ports.StaffDirectory
}

func NewDirectoryService(directory ports.StaffDirectory) *DirectoryService {
	return &DirectoryService{directory: directory}
}

// Search matches staff members by name substring, case-insensitively. A blank
// query returns an empty result set without touching the store.
func (s *DirectoryService) Search(ctx context.Context, query string) ([]domain.StaffMember, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.StaffMember{}, nil
	}
	return s.directory.SearchByName(ctx, query, directorySearchLimit)
}
