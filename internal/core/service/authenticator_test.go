package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/meridian-trust/staff-portal/internal/core/domain"
)

type stubCredentialStore struct {
	users   map[string]*domain.User
	findErr error
}

func newStubCredentialStore() *stubCredentialStore {
	return &stubCredentialStore{users: make(map[string]*domain.User)}
}

func (s *stubCredentialStore) add(t *testing.T, username, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	s.users[username] = &domain.User{Username: username, PasswordHash: string(hash), Role: role}
}

func (s *stubCredentialStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	user, ok := s.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (s *stubCredentialStore) ListUsers(_ context.Context) ([]domain.User, error) {
	return nil, nil
}

func (s *stubCredentialStore) CountUsers(_ context.Context) (int64, error) {
	return int64(len(s.users)), nil
}

type memAuditLog struct {
	mu        sync.Mutex
	attempts  []domain.LoginAttempt
	appendErr error
}

func (l *memAuditLog) Append(_ context.Context, attempt domain.LoginAttempt) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.appendErr != nil {
		return l.appendErr
	}
	l.attempts = append(l.attempts, attempt)
	return nil
}

func (l *memAuditLog) Recent(_ context.Context, limit int) ([]domain.LoginAttempt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.LoginAttempt, 0, limit)
	for i := len(l.attempts) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, l.attempts[i])
	}
	return out, nil
}

func (l *memAuditLog) RecentForUser(ctx context.Context, username string, limit int) ([]domain.LoginAttempt, error) {
	all, _ := l.Recent(ctx, len(l.attempts))
	out := make([]domain.LoginAttempt, 0, limit)
	for _, a := range all {
		if a.Username == username && len(out) < limit {
			out = append(out, a)
		}
	}
	return out, nil
}

func (l *memAuditLog) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.attempts)
}

func (l *memAuditLog) last(t *testing.T) domain.LoginAttempt {
	t.Helper()
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.attempts) == 0 {
		t.Fatalf("audit log is empty")
	}
	return l.attempts[len(l.attempts)-1]
}

func newTestAuthenticator(store *stubCredentialStore, audit *memAuditLog) *Authenticator {
	return NewAuthenticator(store, audit, zerolog.Nop())
}

func TestAuthenticator_Success(t *testing.T) {
	store := newStubCredentialStore()
	store.add(t, "alice", "hunter2", domain.RoleEmployee)
	audit := &memAuditLog{}
	auth := newTestAuthenticator(store, audit)

	identity, err := auth.Authenticate(context.Background(), "alice", "hunter2", "10.0.0.5", "test-agent")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if identity.Username != "alice" || identity.Role != domain.RoleEmployee {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	if audit.len() != 1 {
		t.Fatalf("expected 1 audit record, got %d", audit.len())
	}
	attempt := audit.last(t)
	if !attempt.Success || attempt.Username != "alice" {
		t.Fatalf("unexpected attempt: %+v", attempt)
	}
	if attempt.SourceIP != "10.0.0.5" || attempt.UserAgent != "test-agent" {
		t.Fatalf("attempt missing request metadata: %+v", attempt)
	}
	if attempt.AttemptedAt.IsZero() {
		t.Fatalf("attempt timestamp not set")
	}
}

func TestAuthenticator_WrongPassword(t *testing.T) {
	store := newStubCredentialStore()
	store.add(t, "bob", "correct", domain.RoleEmployee)
	audit := &memAuditLog{}
	auth := newTestAuthenticator(store, audit)

	_, err := auth.Authenticate(context.Background(), "bob", "wrong", "10.0.0.5", "")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if audit.len() != 1 {
		t.Fatalf("expected 1 audit record, got %d", audit.len())
	}
	if attempt := audit.last(t); attempt.Success {
		t.Fatalf("failed login recorded as success")
	}
}

func TestAuthenticator_UnknownUser(t *testing.T) {
	store := newStubCredentialStore()
	audit := &memAuditLog{}
	auth := newTestAuthenticator(store, audit)

	_, err := auth.Authenticate(context.Background(), "ghost", "whatever", "10.0.0.5", "")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	// The attempted username is recorded verbatim even though no such user
	// exists.
	attempt := audit.last(t)
	if attempt.Username != "ghost" || attempt.Success {
		t.Fatalf("unexpected attempt: %+v", attempt)
	}
}

func TestAuthenticator_RepeatedFailures(t *testing.T) {
	store := newStubCredentialStore()
	store.add(t, "bob", "correct", domain.RoleEmployee)
	audit := &memAuditLog{}
	auth := newTestAuthenticator(store, audit)

	for i := 0; i < 3; i++ {
		if _, err := auth.Authenticate(context.Background(), "bob", "wrong", "10.0.0.5", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}

	recent, err := audit.Recent(context.Background(), 3)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recent))
	}
	for _, a := range recent {
		if a.Username != "bob" || a.Success {
			t.Fatalf("unexpected attempt: %+v", a)
		}
	}
}

func TestAuthenticator_StoreUnavailableStillAudits(t *testing.T) {
	store := newStubCredentialStore()
	store.findErr = errors.New("connection refused")
	audit := &memAuditLog{}
	auth := newTestAuthenticator(store, audit)

	_, err := auth.Authenticate(context.Background(), "alice", "hunter2", "10.0.0.5", "")
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	if audit.len() != 1 {
		t.Fatalf("expected a best-effort audit record, got %d", audit.len())
	}
	if attempt := audit.last(t); attempt.Success {
		t.Fatalf("store failure recorded as success")
	}
}

func TestAuthenticator_AuditFailureDoesNotMaskOutcome(t *testing.T) {
	store := newStubCredentialStore()
	store.add(t, "alice", "hunter2", domain.RoleEmployee)
	audit := &memAuditLog{appendErr: errors.New("disk full")}
	auth := newTestAuthenticator(store, audit)

	identity, err := auth.Authenticate(context.Background(), "alice", "hunter2", "10.0.0.5", "")
	if err != nil {
		t.Fatalf("audit failure leaked into the auth outcome: %v", err)
	}
	if identity.Username != "alice" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestAuthenticator_ConcurrentLogins(t *testing.T) {
	store := newStubCredentialStore()
	store.add(t, "alice", "hunter2", domain.RoleEmployee)
	audit := &memAuditLog{}
	auth := newTestAuthenticator(store, audit)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := auth.Authenticate(context.Background(), "alice", "hunter2", "10.0.0.5", "")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent login failed: %v", err)
		}
	}
	if audit.len() != attempts {
		t.Fatalf("expected %d audit records, got %d", attempts, audit.len())
	}
}
