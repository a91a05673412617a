package ports

import (
	"context"

	"github.com/meridian-trust/staff-portal/internal/core/domain"
)

// CredentialStore exposes the provisioned user records. The portal never
// writes to it.
type CredentialStore interface {
	// FindByUsername returns the user with an exact username match, or
	// domain.ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// ListUsers returns every account ordered by role, then username.
	ListUsers(ctx context.Context) ([]domain.User, error)
	// CountUsers returns the total number of accounts.
	CountUsers(ctx context.Context) (int64, error)
}
