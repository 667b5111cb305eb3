package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestManager(t *testing.T) (*Manager, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewManager(client, 30*time.Minute), mr
}

func TestManager_UserSessionRoundTrip(t *testing.T) {
	manager, _ := newTestManager(t)
	ctx := context.Background()

	token, err := manager.CreateUserSession(ctx, Identity{UserID: 7, Name: "Asha"})
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	if token == "" {
		t.Fatal("Expected a non-empty token")
	}

	identity, err := manager.GetUserSession(ctx, token)
	if err != nil {
		t.Fatalf("Failed to resolve session: %v", err)
	}
	if identity.UserID != 7 || identity.Name != "Asha" {
		t.Errorf("Expected identity {7 Asha}, got %+v", identity)
	}
}

func TestManager_UnknownToken(t *testing.T) {
	manager, _ := newTestManager(t)

	_, err := manager.GetUserSession(context.Background(), "no-such-token")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestManager_DeleteUserSession(t *testing.T) {
	manager, _ := newTestManager(t)
	ctx := context.Background()

	token, err := manager.CreateUserSession(ctx, Identity{UserID: 1, Name: "Ravi"})
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	if err := manager.DeleteUserSession(ctx, token); err != nil {
		t.Fatalf("Failed to delete session: %v", err)
	}

	if _, err := manager.GetUserSession(ctx, token); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestManager_SessionExpiry(t *testing.T) {
	manager, mr := newTestManager(t)
	ctx := context.Background()

	token, err := manager.CreateUserSession(ctx, Identity{UserID: 1, Name: "Ravi"})
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	mr.FastForward(31 * time.Minute)

	if _, err := manager.GetUserSession(ctx, token); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound after expiry, got %v", err)
	}
}

func TestManager_AdminSessionsAreDisjoint(t *testing.T) {
	manager, _ := newTestManager(t)
	ctx := context.Background()

	adminToken, err := manager.CreateAdminSession(ctx)
	if err != nil {
		t.Fatalf("Failed to create admin session: %v", err)
	}

	ok, err := manager.IsAdminSession(ctx, adminToken)
	if err != nil || !ok {
		t.Fatalf("Expected live admin session, got ok=%v err=%v", ok, err)
	}

	// An admin token is not a user session and vice versa.
	if _, err := manager.GetUserSession(ctx, adminToken); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Admin token must not resolve as a user session, got %v", err)
	}

	userToken, err := manager.CreateUserSession(ctx, Identity{UserID: 2, Name: "Asha"})
	if err != nil {
		t.Fatalf("Failed to create user session: %v", err)
	}
	ok, err = manager.IsAdminSession(ctx, userToken)
	if err != nil {
		t.Fatalf("IsAdminSession failed: %v", err)
	}
	if ok {
		t.Error("User token must not count as an admin session")
	}

	// Clearing the admin flag leaves the user session alive.
	if err := manager.DeleteAdminSession(ctx, adminToken); err != nil {
		t.Fatalf("Failed to delete admin session: %v", err)
	}
	if _, err := manager.GetUserSession(ctx, userToken); err != nil {
		t.Errorf("User session should survive admin logout, got %v", err)
	}
}
