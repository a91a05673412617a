package ports

import (
	"context"

	"github.com/meridian-trust/staff-portal/internal/core/domain"
)

// AuditLog is the append-only trail of login attempts.
type AuditLog interface {
	// Append records one attempt. Records are immutable once written.
	Append(ctx context.Context, attempt domain.LoginAttempt) error
	// Recent returns up to limit attempts, newest first. An empty log yields
	// an empty slice, not an error.
	Recent(ctx context.Context, limit int) ([]domain.LoginAttempt, error)
	// RecentForUser is Recent filtered to one attempted username.
	RecentForUser(ctx context.Context, username string, limit int) ([]domain.LoginAttempt, error)
}
