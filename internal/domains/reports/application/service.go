package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Apurer/shop-admin/internal/domains/reports/domain"
	"github.com/Apurer/shop-admin/internal/domains/reports/ports"
)

// DefaultPeriod is used when the caller leaves the range open.
const DefaultPeriod = 30 * 24 * time.Hour

var (
	ErrInvalidInput = errors.New("invalid report input")
	ErrInvalidRange = errors.New("report range ends before it starts")
)

type Service struct {
	source ports.Source
	now    func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(source ports.Source, opts ...Option) *Service {
	s := &Service{source: source, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate validates the type and range then asks the source for rows. A zero
// to means now; a zero from means DefaultPeriod before to.
func (s *Service) Generate(ctx context.Context, rawType string, from, to time.Time) (*domain.Report, error) {
	t, err := domain.ParseReportType(rawType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if to.IsZero() {
		to = s.now()
	}
	if from.IsZero() {
		from = to.Add(-DefaultPeriod)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, ErrInvalidRange)
	}
	rows, err := s.source.Rows(ctx, t, from, to)
	if err != nil {
		return nil, err
	}
	return domain.NewReport(t, from, to, rows), nil
}

var _ ports.Service = (*Service)(nil)
