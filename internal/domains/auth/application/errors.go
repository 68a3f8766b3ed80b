package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/shop-admin/internal/domains/auth/ports"
)

var (
	// ErrInvalidInput signals missing credentials.
	ErrInvalidInput = errors.New("invalid login input")
	// ErrAuthentication wraps rejected credentials.
	ErrAuthentication = errors.New("authentication failed")
	// ErrUnauthenticated means the bearer token is unknown or expired.
	ErrUnauthenticated = errors.New("not authenticated")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ports.ErrInvalidCredentials) {
		return fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	if errors.Is(err, ports.ErrSessionNotFound) {
		return fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	return err
}
