package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/meridian-trust/staff-portal/internal/core/domain"
	"github.com/meridian-trust/staff-portal/internal/core/ports"
)

// tokenBytes is the entropy of a session token before encoding. 32 bytes of
// crypto/rand output keeps tokens unguessable from username, time, or
// sequence.
const tokenBytes = 32

// SessionManager mints opaque tokens and is the only component that can map
// one back to an identity.
type SessionManager struct {
	store ports.SessionStore
}

func NewSessionManager(store ports.SessionStore) *SessionManager {
	return &SessionManager{store: store}
}

func (m *SessionManager) Create(ctx context.Context, username, role string) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	session := domain.Session{
		Token:     token,
		Username:  username,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if err := m.store.Put(ctx, session); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func (m *SessionManager) Resolve(ctx context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, nil
	}
	session, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	if session == nil {
		return nil, nil
	}
	return &domain.Identity{Username: session.Username, Role: session.Role}, nil
}

func (m *SessionManager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, token)
}

func (m *SessionManager) ActiveCount(ctx context.Context) (int64, error) {
	return m.store.Count(ctx)
}
