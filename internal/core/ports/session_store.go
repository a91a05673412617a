package ports

import (
	"context"

	"github.com/meridian-trust/staff-portal/internal/core/domain"
)

// SessionStore persists live sessions keyed by token. Implementations decide
// the expiry policy; callers only see presence or absence.
type SessionStore interface {
	Put(ctx context.Context, session domain.Session) error
	// Get returns (nil, nil) for a token that does not exist or has expired.
	Get(ctx context.Context, token string) (*domain.Session, error)
	// Delete removes a session. Deleting an absent token is a no-op.
	Delete(ctx context.Context, token string) error
	// Count returns the number of live sessions.
	Count(ctx context.Context) (int64, error)
}
