// Package auth holds the viewer's login state. It is passed explicitly to every
// component that needs identity or a token.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"shorts_feed/internal/domain"
)

// IdentityResolver looks up the user a token belongs to.
type IdentityResolver interface {
	Me(ctx context.Context) (domain.User, error)
}

type Session struct {
	mu       sync.RWMutex
	token    string
	user     *domain.User
	resolver IdentityResolver
	logger   *slog.Logger
}

func NewSession(resolver IdentityResolver, logger *slog.Logger) *Session {
	return &Session{
		resolver: resolver,
		logger:   logger.With("component", "auth"),
	}
}

// Login stores token and resolves the identity behind it. On failure the
// session is left logged out unless another Login has replaced the token in
// the meantime.
func (s *Session) Login(ctx context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.user = nil
	s.mu.Unlock()

	user, err := s.resolver.Me(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	// A concurrent Login or Logout that replaced the token owns the session.
	owner := s.token == token
	if err != nil {
		if owner {
			s.token = ""
			s.user = nil
		}
		return fmt.Errorf("login: %w", err)
	}
	if !owner {
		return nil
	}
	s.user = &user
	s.logger.Info("logged in", "user_id", user.ID)
	return nil
}

func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Current returns the logged-in user, or false when browsing anonymously.
func (s *Session) Current() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}
