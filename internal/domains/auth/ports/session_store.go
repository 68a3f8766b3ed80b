package ports

import (
	"context"
	"errors"

	"github.com/Apurer/shop-admin/internal/domains/auth/domain"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore abstracts session persistence keyed by token.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	// Lookup returns ErrSessionNotFound for unknown tokens. Expiry is checked by the caller.
	Lookup(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
	PurgeExpired(ctx context.Context) (int64, error)
}
