package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Cookie names for the two disjoint session kinds. A user session carries a
// student identity; an admin session is only a flag.
const (
	UserCookie  = "prs_session"
	AdminCookie = "prs_admin"
)

var ErrSessionNotFound = errors.New("session not found")

// Identity is the request-scoped identity resolved from a session token.
type Identity struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
}

// Manager stores opaque session tokens in Redis. Tokens are random UUIDs;
// nothing about the user is recoverable from the token itself.
type Manager struct {
	client *redis.Client
	ttl    time.Duration
}

func NewManager(client *redis.Client, ttl time.Duration) *Manager {
	return &Manager{client: client, ttl: ttl}
}

func userKey(token string) string  { return "session:user:" + token }
func adminKey(token string) string { return "session:admin:" + token }

// CreateUserSession issues a token for the given identity.
func (m *Manager) CreateUserSession(ctx context.Context, identity Identity) (string, error) {
	data, err := json.Marshal(identity)
	if err != nil {
		return "", fmt.Errorf("failed to marshal identity: %w", err)
	}

	token := uuid.New().String()
	if err := m.client.Set(ctx, userKey(token), data, m.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token, nil
}

// GetUserSession resolves a token into the identity it was issued for.
func (m *Manager) GetUserSession(ctx context.Context, token string) (*Identity, error) {
	data, err := m.client.Get(ctx, userKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var identity Identity
	if err := json.Unmarshal([]byte(data), &identity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal identity: %w", err)
	}

	return &identity, nil
}

// DeleteUserSession revokes a user session token.
func (m *Manager) DeleteUserSession(ctx context.Context, token string) error {
	if err := m.client.Del(ctx, userKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// CreateAdminSession issues an admin-flag token.
func (m *Manager) CreateAdminSession(ctx context.Context) (string, error) {
	token := uuid.New().String()
	if err := m.client.Set(ctx, adminKey(token), "1", m.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store admin session: %w", err)
	}
	return token, nil
}

// IsAdminSession reports whether the token carries a live admin flag.
func (m *Manager) IsAdminSession(ctx context.Context, token string) (bool, error) {
	_, err := m.client.Get(ctx, adminKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read admin session: %w", err)
	}
	return true, nil
}

// DeleteAdminSession clears the admin flag only; any user session on the
// same browser is untouched.
func (m *Manager) DeleteAdminSession(ctx context.Context, token string) error {
	if err := m.client.Del(ctx, adminKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete admin session: %w", err)
	}
	return nil
}
