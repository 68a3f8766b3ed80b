package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Identity is the CMS account behind an admin session.
type Identity struct {
	UserID   int64
	Username string
	Email    string
}

// Session is an authenticated admin session addressed by an opaque token.
type Session struct {
	Token     string
	UserID    int64
	Username  string
	Email     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// NewSession issues a random token for identity valid for ttl from now.
func NewSession(identity Identity, now time.Time, ttl time.Duration) *Session {
	return &Session{
		Token:     uuid.NewString(),
		UserID:    identity.UserID,
		Username:  identity.Username,
		Email:     identity.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// Expired reports whether the session is no longer valid at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Actor is the name written to audit entries for actions taken in this session.
func (s *Session) Actor() string {
	if s.Username != "" {
		return s.Username
	}
	return s.Email
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
