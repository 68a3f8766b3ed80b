package ports

import (
	"context"
	"errors"

	"github.com/Apurer/shop-admin/internal/domains/auth/domain"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator checks credentials against the CMS account store.
type Authenticator interface {
	Authenticate(ctx context.Context, identifier, password string) (domain.Identity, error)
}

// Service exposes the admin session gate.
type Service interface {
	Login(ctx context.Context, identifier, password string) (*domain.Session, error)
	// Authenticate resolves a bearer token to a live session.
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
	Logout(ctx context.Context, token string) error
}
