package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
)

// ErrInvalidInput signals the request violated an order invariant.
var ErrInvalidInput = errors.New("invalid order input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrUnknownStatus) ||
		errors.Is(err, domain.ErrInvalidSort) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
