package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"vishnu-auto/internal/domain"
	"vishnu-auto/internal/store"
)

// Service is the session gate. One session exists at a time; it is persisted
// under the current-session key and resumed on cold start. Sessions never
// expire, they only end on logout.
type Service struct {
	mu      sync.Mutex
	st      store.Store
	creds   CredentialVerifier
	logger  *log.Logger
	current *domain.Session
}

func New(st store.Store, creds CredentialVerifier, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if creds == nil {
		creds = FixedCredentials()
	}
	return &Service{st: st, creds: creds, logger: logger}
}

// Resume restores a persisted session, if any. Called once at startup.
func (s *Service) Resume(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.st.Get(ctx, store.KeySession)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return fmt.Errorf("decode session: %w", err)
	}
	s.current = &session
	s.logger.Printf("auth: resumed session user=%s role=%s", session.Username, session.Role)
	return nil
}

// Login validates credentials, installs and persists the session. A mismatch
// returns domain.ErrInvalidCredentials and leaves no trace.
func (s *Service) Login(ctx context.Context, username, password string, role domain.Role) (*domain.Session, error) {
	session, ok := s.creds.Verify(username, password, role)
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	encoded, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}
	if err := s.st.Set(ctx, store.KeySession, encoded); err != nil {
		return nil, err
	}
	s.current = session
	s.logger.Printf("auth: login user=%s role=%s", session.Username, session.Role)

	cp := *session
	return &cp, nil
}

// Logout clears the session in memory and in the store.
func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	return s.st.Delete(ctx, store.KeySession)
}

// Current returns a copy of the active session, or nil when logged out.
func (s *Service) Current() *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// HasPermission reports whether a session exists and grants p.
func (s *Service) HasPermission(p domain.Permission) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Has(p)
}
