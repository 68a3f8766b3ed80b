package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Apurer/shop-admin/internal/domains/auth/domain"
	"github.com/Apurer/shop-admin/internal/domains/auth/ports"
)

// SessionStore is an in-memory SessionStore implementation.
type SessionStore struct {
	sessions sync.Map
	now      func() time.Time
}

type Option func(*SessionStore)

// WithClock replaces the clock PurgeExpired compares against.
func WithClock(now func() time.Time) Option {
	return func(s *SessionStore) {
		if now != nil {
			s.now = now
		}
	}
}

func NewSessionStore(opts ...Option) *SessionStore {
	s := &SessionStore{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SessionStore) Save(_ context.Context, session *domain.Session) error {
	cp := *session
	s.sessions.Store(session.Token, &cp)
	return nil
}

func (s *SessionStore) Lookup(_ context.Context, token string) (*domain.Session, error) {
	v, ok := s.sessions.Load(token)
	if !ok {
		return nil, ports.ErrSessionNotFound
	}
	cp := *v.(*domain.Session)
	return &cp, nil
}

func (s *SessionStore) Delete(_ context.Context, token string) error {
	s.sessions.Delete(token)
	return nil
}

func (s *SessionStore) PurgeExpired(_ context.Context) (int64, error) {
	now := s.now()
	var purged int64
	s.sessions.Range(func(key, value any) bool {
		if value.(*domain.Session).Expired(now) {
			s.sessions.Delete(key)
			purged++
		}
		return true
	})
	return purged, nil
}

var _ ports.SessionStore = (*SessionStore)(nil)
