package services

import (
	"context"
	"testing"

	"github.com/placeprep/readiness-service/internal/cache"
	"github.com/placeprep/readiness-service/internal/events"
)

func TestStoreService_Reset(t *testing.T) {
	repo := NewMockRepository()
	publisher := events.NewMockEventPublisher(testLogger())
	service := NewStoreService(repo, cache.NewStatsCache(nil), publisher, testLogger())
	ctx := context.Background()

	seedScoredUser(t, repo, "doomed", 90, 90, 2)

	if err := service.Reset(ctx); err != nil {
		t.Fatalf("Failed to reset: %v", err)
	}

	if !repo.ResetCalled {
		t.Error("Expected the repository reset to be invoked")
	}

	users, err := repo.User().List(ctx)
	if err != nil {
		t.Fatalf("Failed to list users: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("Expected no users after reset, got %d", len(users))
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 || published[0].Type != events.TypeStoreReset {
		t.Errorf("Expected one store_reset event, got %v", published)
	}
}
