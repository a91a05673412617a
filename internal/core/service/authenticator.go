package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/meridian-trust/staff-portal/internal/core/domain"
	"github.com/meridian-trust/staff-portal/internal/core/ports"
)

// Authenticator verifies credentials against the store and writes one audit
// record per call, whatever the outcome.
type Authenticator struct {
	store ports.CredentialStore
	audit ports.AuditLog
	log   zerolog.Logger
}

func NewAuthenticator(store ports.CredentialStore, audit ports.AuditLog, log zerolog.Logger) *Authenticator {
	return &Authenticator{store: store, audit: audit, log: log}
}

func (a *Authenticator) Authenticate(ctx context.Context, username, password, sourceIP, userAgent string) (domain.Identity, error) {
	var identity domain.Identity
	var outcome error

	user, err := a.store.FindByUsername(ctx, username)
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			outcome = domain.ErrInvalidCredentials
		} else {
			identity = domain.Identity{Username: user.Username, Role: user.Role}
		}
	case errors.Is(err, domain.ErrUserNotFound):
		// Indistinguishable from a wrong password to the caller.
		outcome = domain.ErrInvalidCredentials
	default:
		a.log.Error().Err(err).Str("username", username).Msg("credential store unreachable")
		outcome = domain.ErrStoreUnavailable
	}

	attempt := domain.LoginAttempt{
		Username:    username,
		AttemptedAt: time.Now().UTC(),
		Success:     outcome == nil,
		SourceIP:    sourceIP,
		UserAgent:   userAgent,
	}
	// The audit write is best-effort and never replaces the primary outcome.
	if err := a.audit.Append(ctx, attempt); err != nil {
		a.log.Error().Err(err).Str("username", username).Msg("audit append failed")
	}

	return identity, outcome
}
