// Package session implements opaque-token server-side sessions. The token
// handed to the client is pure random material; everything about the
// authenticated user lives in a server-side record with a fixed expiry.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Session is the server-side record bound to a token.
type Session struct {
	UserID    int       `json:"userId"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Store persists session records keyed by token.
type Store interface {
	Save(ctx context.Context, token string, sess Session) error
	// Get reports found=false for unknown tokens; expiry is the
	// Manager's concern.
	Get(ctx context.Context, token string) (Session, bool, error)
	Delete(ctx context.Context, token string) error
}

type Manager struct {
	store Store
	ttl   time.Duration
}

func NewManager(store Store, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Manager{store: store, ttl: ttl}
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Create binds a fresh token to the given identity.
func (m *Manager) Create(ctx context.Context, userID int, username, role string) (string, error) {
	token, err := newToken()

	if err != nil {
		return "", err
	}

	sess := Session{
		UserID:    userID,
		Username:  username,
		Role:      role,
		ExpiresAt: time.Now().Add(m.ttl),
	}

	err = m.store.Save(ctx, token, sess)

	if err != nil {
		return "", err
	}

	return token, nil
}

// Get returns the live session for a token. Expired sessions are deleted
// on sight and reported as absent.
func (m *Manager) Get(ctx context.Context, token string) (Session, bool, error) {
	if token == "" {
		return Session{}, false, nil
	}

	sess, ok, err := m.store.Get(ctx, token)

	if err != nil || !ok {
		return Session{}, false, err
	}

	if time.Now().After(sess.ExpiresAt) {
		_ = m.store.Delete(ctx, token)
		return Session{}, false, nil
	}

	return sess, true, nil
}

// Destroy invalidates a token; unknown tokens are a no-op.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	return m.store.Delete(ctx, token)
}

func newToken() (string, error) {
	b := make([]byte, 32)

	_, err := rand.Read(b)

	if err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}
