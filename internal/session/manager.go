// Package session implements cookie-bound server-side sessions. The cookie
// carries only an opaque identifier; the claims live in Redis under a TTL,
// so logout and account deletion invalidate a session immediately.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const keyPrefix = "session:"

// CookieName is the name of the session cookie.
const CookieName = "netdash_session"

// Session lifetimes. DefaultTTL applies to browser-session cookies;
// RememberMeTTL applies when the client asked to stay signed in.
const (
	DefaultTTL    = 24 * time.Hour
	RememberMeTTL = 30 * 24 * time.Hour
)

var (
	// ErrSessionNotFound is returned when no session exists for an identifier.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session exists but has expired.
	ErrSessionExpired = errors.New("session expired")
	// ErrInvalidSession is returned when the stored session data is corrupt.
	ErrInvalidSession = errors.New("invalid session")
)

// Claims is the identity attribute set bound to a session. It never
// includes the password hash.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// Session is a stored session record.
type Session struct {
	ID        string    `json:"id"`
	Claims    Claims    `json:"claims"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Manager creates, resolves and destroys sessions.
type Manager interface {
	Create(ctx context.Context, claims Claims, ttl time.Duration) (string, error)
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

type manager struct {
	store Store
}

// NewManager creates a session manager on top of a Store.
func NewManager(store Store) Manager {
	return &manager{store: store}
}

// Create binds claims to a fresh opaque identifier with the given lifetime.
func (m *manager) Create(ctx context.Context, claims Claims, ttl time.Duration) (string, error) {
	sessionID := uuid.New().String()

	now := time.Now()
	sess := &Session{
		ID:        sessionID,
		Claims:    claims,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}

	if err := m.store.Set(ctx, keyPrefix+sessionID, string(data), ttl); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return sessionID, nil
}

// Get resolves a session identifier. Expired sessions are deleted lazily
// and reported as expired, matching a store-side TTL eviction.
func (m *manager) Get(ctx context.Context, sessionID string) (*Session, error) {
	data, err := m.store.Get(ctx, keyPrefix+sessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, ErrInvalidSession
	}

	if time.Now().After(sess.ExpiresAt) {
		_ = m.store.Delete(ctx, keyPrefix+sessionID)
		return nil, ErrSessionExpired
	}
	return &sess, nil
}

// Delete destroys a session. Deleting an unknown identifier is not an error.
func (m *manager) Delete(ctx context.Context, sessionID string) error {
	return m.store.Delete(ctx, keyPrefix+sessionID)
}
