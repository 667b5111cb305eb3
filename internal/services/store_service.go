package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/placeprep/readiness-service/internal/cache"
	"github.com/placeprep/readiness-service/internal/events"
	"github.com/placeprep/readiness-service/internal/repositories"
)

type storeService struct {
	repo       repositories.Repository
	statsCache *cache.CacheHelper
	publisher  events.EventPublisher
	logger     *slog.Logger
}

func NewStoreService(
	repo repositories.Repository,
	statsCache *cache.CacheHelper,
	publisher events.EventPublisher,
	logger *slog.Logger,
) StoreService {
	return &storeService{
		repo:       repo,
		statsCache: statsCache,
		publisher:  publisher,
		logger:     logger,
	}
}

// Reset drops and recreates all tables, then clears cached aggregates.
// Callers must hold an admin session.
func (s *storeService) Reset(ctx context.Context) error {
	s.logger.Warn("resetting database")

	if err := s.repo.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset store: %w", err)
	}

	cache.InvalidateAllScores(ctx, s.statsCache)

	if err := s.publisher.Publish(ctx, events.TypeStoreReset, nil); err != nil {
		s.logger.Warn("failed to publish reset event", "error", err)
	}

	return nil
}
