package ports

import (
	"context"

	"github.com/meridian-trust/staff-portal/internal/core/domain"
)

// Authenticator verifies submitted credentials and records every outcome in
// the audit log.
type Authenticator interface {
	// Authenticate returns the identity on success, domain.ErrInvalidCredentials
	// when the username or password is wrong (the two cases are not
	// distinguished), or domain.ErrStoreUnavailable when the credential store
	// cannot be reached. One audit record is written in every case.
	Authenticate(ctx context.Context, username, password, sourceIP, userAgent string) (domain.Identity, error)
}

// SessionManager is the sole authority mapping tokens to identities.
type SessionManager interface {
	// Create mints an unguessable opaque token bound to username and role.
	Create(ctx context.Context, username, role string) (string, error)
	// Resolve returns (nil, nil) for an unknown, expired, or destroyed token.
	Resolve(ctx context.Context, token string) (*domain.Identity, error)
	// Destroy invalidates a token. Idempotent.
	Destroy(ctx context.Context, token string) error
	// ActiveCount returns the number of live sessions.
	ActiveCount(ctx context.Context) (int64, error)
}

// AuthorizationGate is the single check run before any protected operation.
type AuthorizationGate interface {
	// Authorize resolves the token and, when requiredRole is non-empty,
	// demands an exact role match. It returns domain.ErrNoSession or
	// domain.ErrInsufficientRole on denial.
	Authorize(ctx context.Context, token, requiredRole string) (domain.Identity, error)
}

// DirectoryService answers staff-directory lookups for the internal pages.
type DirectoryService interface {
	Search(ctx context.Context, query string) ([]domain.StaffMember, error)
}

// StaffDirectory is the persistence port behind DirectoryService.
type StaffDirectory interface {
	SearchByName(ctx context.Context, query string, limit int) ([]domain.StaffMember, error)
}
