package service

import (
	"context"
	"log"
	"sync"

	"github.com/wadoud17/maktabati-pos/internal/domain/entity"
	"github.com/wadoud17/maktabati-pos/pkg/apperror"
)

// Authenticator signs credentials in against the backend.
type Authenticator interface {
	SignIn(ctx context.Context, login, password string) (*entity.User, error)
}

// IdentityStore persists the identity record across restarts.
type IdentityStore interface {
	Load() (*entity.User, error)
	Save(user *entity.User) error
	Clear() error
}

// SessionService owns the current authenticated identity. There are no
// ambient globals: consumers read and mutate the session only through this
// service.
type SessionService struct {
	auth  Authenticator
	store IdentityStore

	mu      sync.Mutex
	user    *entity.User
	loading bool
}

// NewSessionService creates a session with no identity.
func NewSessionService(auth Authenticator, store IdentityStore) *SessionService {
	return &SessionService{auth: auth, store: store}
}

// Restore loads a previously persisted identity, if any. The stored record
// is trusted as-is until the next failed call or an explicit logout.
func (s *SessionService) Restore() {
	user, err := s.store.Load()
	if err != nil {
		log.Printf("Warning: could not restore session: %v", err)
		return
	}
	if user == nil {
		return
	}
	if !user.Role.IsValid() {
		log.Printf("Warning: discarding persisted session with unknown role %v", user.Role)
		return
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
}

// Login submits credentials to the authentication endpoint. On success the
// identity is replaced and persisted. Every failure, whatever its cause, is
// reported as invalid credentials and leaves the identity unchanged.
func (s *SessionService) Login(ctx context.Context, login, password string) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	user, err := s.auth.SignIn(ctx, login, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		return apperror.ErrInvalidCredentials
	}

	s.user = user
	if err := s.store.Save(user); err != nil {
		log.Printf("Warning: could not persist session: %v", err)
	}
	return nil
}

// Logout clears the identity and its persisted record. Irreversible except
// via a new login.
func (s *SessionService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	if err := s.store.Clear(); err != nil {
		log.Printf("Warning: could not clear persisted session: %v", err)
	}
}

// Current returns the authenticated identity, or nil.
func (s *SessionService) Current() *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// IsLoading reports whether a login is in flight.
func (s *SessionService) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Token returns the bearer token of the current identity, or "" when the
// session is anonymous.
func (s *SessionService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ""
	}
	return s.user.Token
}
