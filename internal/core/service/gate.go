package service

import (
	"context"

	"github.com/meridian-trust/staff-portal/internal/core/domain"
	"github.com/meridian-trust/staff-portal/internal/core/ports"
)

// Gate performs the authorization check in front of every protected route.
// Each call site states its own requirement: "" for any authenticated role,
// or one exact role such as domain.RoleAdmin. No hierarchy is inferred from
// role names.
type Gate struct {
	sessions ports.SessionManager
}

func NewGate(sessions ports.SessionManager) *Gate {
	return &Gate{sessions: sessions}
}

func (g *Gate) Authorize(ctx context.Context, token, requiredRole string) (domain.Identity, error) {
	identity, err := g.sessions.Resolve(ctx, token)
	if err != nil {
		return domain.Identity{}, err
	}
	if identity == nil {
		return domain.Identity{}, domain.ErrNoSession
	}
	if requiredRole != "" && identity.Role != requiredRole {
		return domain.Identity{}, domain.ErrInsufficientRole
	}
	return *identity, nil
}
