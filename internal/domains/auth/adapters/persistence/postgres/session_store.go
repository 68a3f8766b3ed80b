package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/shop-admin/internal/domains/auth/domain"
	"github.com/Apurer/shop-admin/internal/domains/auth/ports"
)

// SessionStore persists admin sessions in PostgreSQL.
type SessionStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSessionStore wires a PostgreSQL-backed session store. Caller owns DB lifecycle.
func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{db: db, now: time.Now}
}

type sessionRecord struct {
	Token     string    `gorm:"primaryKey;column:token;size:64"`
	UserID    int64     `gorm:"column:user_id;index"`
	Username  string    `gorm:"column:username"`
	Email     string    `gorm:"column:email"`
	ExpiresAt time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (sessionRecord) TableName() string { return "admin_sessions" }

// Save upserts a session by token.
func (s *SessionStore) Save(ctx context.Context, session *domain.Session) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	if session == nil || strings.TrimSpace(session.Token) == "" {
		return errors.New("session token is required")
	}
	rec := sessionRecord{
		Token:     session.Token,
		UserID:    session.UserID,
		Username:  session.Username,
		Email:     session.Email,
		ExpiresAt: session.ExpiresAt.UTC(),
		CreatedAt: session.CreatedAt.UTC(),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "username", "email", "expires_at"}),
		}).
		Create(&rec).Error
}

func (s *SessionStore) Lookup(ctx context.Context, token string) (*domain.Session, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}
	var rec sessionRecord
	err := s.db.WithContext(ctx).Where("token = ?", strings.TrimSpace(token)).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ports.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &domain.Session{
		Token:     rec.Token,
		UserID:    rec.UserID,
		Username:  rec.Username,
		Email:     rec.Email,
		CreatedAt: rec.CreatedAt,
		ExpiresAt: rec.ExpiresAt,
	}, nil
}

// Delete removes a session by token.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	return s.db.WithContext(ctx).Delete(&sessionRecord{}, "token = ?", token).Error
}

// PurgeExpired removes all expired sessions. Used by the session-purger command.
func (s *SessionStore) PurgeExpired(ctx context.Context) (int64, error) {
	if err := s.ensureDB(); err != nil {
		return 0, err
	}
	res := s.db.WithContext(ctx).Where("expires_at <= ?", s.now().UTC()).Delete(&sessionRecord{})
	return res.RowsAffected, res.Error
}

func (s *SessionStore) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("postgres session store not configured")
	}
	return nil
}

var _ ports.SessionStore = (*SessionStore)(nil)
