package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Apurer/shop-admin/internal/domains/auth/domain"
	"github.com/Apurer/shop-admin/internal/domains/auth/ports"
)

// DefaultSessionTTL applies when no TTL is configured.
const DefaultSessionTTL = 12 * time.Hour

type Option func(*Service)

func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// Service issues and checks admin sessions.
type Service struct {
	authenticator ports.Authenticator
	sessions      ports.SessionStore
	ttl           time.Duration
	now           func() time.Time
}

func NewService(authenticator ports.Authenticator, sessions ports.SessionStore, opts ...Option) *Service {
	s := &Service{
		authenticator: authenticator,
		sessions:      sessions,
		ttl:           DefaultSessionTTL,
		now:           time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) Login(ctx context.Context, identifier, password string) (*domain.Session, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("%w: identifier and password are required", ErrInvalidInput)
	}
	identity, err := s.authenticator.Authenticate(ctx, identifier, password)
	if err != nil {
		return nil, mapError(err)
	}
	session := domain.NewSession(identity, s.now(), s.ttl)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Authenticate drops expired sessions as it finds them.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrUnauthenticated
	}
	session, err := s.sessions.Lookup(ctx, token)
	if err != nil {
		return nil, mapError(err)
	}
	if session.Expired(s.now()) {
		_ = s.sessions.Delete(ctx, token)
		return nil, fmt.Errorf("%w: session expired", ErrUnauthenticated)
	}
	return session, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// PurgeExpired removes every expired session and reports how many were dropped.
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	return s.sessions.PurgeExpired(ctx)
}

var _ ports.Service = (*Service)(nil)
