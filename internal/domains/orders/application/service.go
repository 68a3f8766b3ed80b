package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
	"github.com/Apurer/shop-admin/internal/domains/orders/ports"
	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

// Service orchestrates the orders use cases.
type Service struct {
	repo   ports.Repository
	audit  ports.AuditLog
	events ports.EventPublisher
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*Service)

// WithAuditLog records every successful mutation.
func WithAuditLog(audit ports.AuditLog) Option {
	return func(s *Service) { s.audit = audit }
}

// WithEventPublisher announces every successful mutation.
func WithEventPublisher(events ports.EventPublisher) Option {
	return func(s *Service) { s.events = events }
}

// WithLogger receives warnings about audit and event failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService wires the orders service with its dependencies.
func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, now: time.Now, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// List returns one page of orders matching the query.
func (s *Service) List(ctx context.Context, query domain.ListQuery) (pagination.Page[*domain.Order], error) {
	query = query.Normalized()
	if err := query.Validate(); err != nil {
		return pagination.Page[*domain.Order]{}, mapError(fmt.Errorf("%w: %w", ErrInvalidInput, err))
	}
	page, err := s.repo.List(ctx, query)
	if err != nil {
		return pagination.Page[*domain.Order]{}, mapError(err)
	}
	return page, nil
}

// Get loads a single order.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Order, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: order id must be positive", ErrInvalidInput)
	}
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return order, nil
}

// ChangeStatus writes the new status. Setting the current status again is a no-op.
func (s *Service) ChangeStatus(ctx context.Context, cmd ports.ChangeStatusCommand) (*domain.Order, error) {
	status, err := domain.ParseStatus(string(cmd.Status))
	if err != nil {
		return nil, mapError(err)
	}
	current, err := s.Get(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return current, nil
	}
	updated, err := s.repo.UpdateStatus(ctx, cmd.OrderID, status)
	if err != nil {
		return nil, mapError(err)
	}
	s.record(ctx, domain.AuditEntry{
		OrderID:    current.ID,
		OrderCode:  current.Code,
		Action:     domain.AuditStatusChanged,
		FromStatus: current.Status,
		ToStatus:   status,
		Actor:      cmd.Actor,
		Fields:     []string{"status"},
	})
	return updated, nil
}

// Delete removes an order.
func (s *Service) Delete(ctx context.Context, cmd ports.DeleteCommand) error {
	current, err := s.Get(ctx, cmd.OrderID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, cmd.OrderID); err != nil {
		return mapError(err)
	}
	s.record(ctx, domain.AuditEntry{
		OrderID:    current.ID,
		OrderCode:  current.Code,
		Action:     domain.AuditDeleted,
		FromStatus: current.Status,
		Actor:      cmd.Actor,
	})
	return nil
}

// record is best effort: the CMS write already happened and is not rolled back.
func (s *Service) record(ctx context.Context, entry domain.AuditEntry) {
	entry.ID = uuid.NewString()
	entry.OccurredAt = s.now().UTC()
	attrs := []slog.Attr{slog.Int64("order.id", entry.OrderID), slog.String("action", string(entry.Action))}
	if s.audit != nil {
		if err := s.audit.Record(ctx, entry); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to record order audit entry", append(attrs, slog.String("error", err.Error()))...)
		}
	}
	if s.events != nil {
		if err := s.events.Publish(ctx, domain.EventFromAudit(entry)); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to publish order event", append(attrs, slog.String("error", err.Error()))...)
		}
	}
}

// IsNotFound reports whether err means the order does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ports.ErrNotFound)
}

var _ ports.Service = (*Service)(nil)
