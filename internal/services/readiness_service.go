package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/placeprep/readiness-service/internal/cache"
	"github.com/placeprep/readiness-service/internal/repositories"
)

type readinessService struct {
	repo       repositories.Repository
	statsCache *cache.CacheHelper
	policy     TierPolicy
	logger     *slog.Logger
}

func NewReadinessService(
	repo repositories.Repository,
	statsCache *cache.CacheHelper,
	policy TierPolicy,
	logger *slog.Logger,
) ReadinessService {
	return &readinessService{
		repo:       repo,
		statsCache: statsCache,
		policy:     policy,
		logger:     logger,
	}
}

// GetReadiness reads the per-user aggregates, applies the weighted formula
// and resolves the feedback tier. Results are cached until the next record
// insert for that user.
func (s *readinessService) GetReadiness(ctx context.Context, userID uint) (*ReadinessResult, error) {
	cacheKey := fmt.Sprintf("user:%d", userID)

	var cached ReadinessResult
	if err := s.statsCache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrCacheNotFound) && !errors.Is(err, cache.ErrCacheNotAvailable) {
		s.logger.Warn("readiness cache read failed", "user_id", userID, "error", err)
	}

	summary, err := s.repo.Report().GetUserScores(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user scores: %w", err)
	}

	result := s.evaluate(userID, *summary)

	if err := s.statsCache.Set(ctx, cacheKey, result); err != nil && !errors.Is(err, cache.ErrCacheNotAvailable) {
		s.logger.Warn("readiness cache write failed", "user_id", userID, "error", err)
	}

	return result, nil
}

// GetDashboard assembles the student view: full record history plus the
// computed readiness.
func (s *readinessService) GetDashboard(ctx context.Context, userID uint) (*DashboardResponse, error) {
	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	aptitude, err := s.repo.Aptitude().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list aptitude records: %w", err)
	}

	certs, err := s.repo.Certification().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list certification records: %w", err)
	}

	resumes, err := s.repo.Resume().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list resume records: %w", err)
	}

	readiness, err := s.GetReadiness(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		UserName:       user.Name,
		Aptitude:       aptitude,
		Certifications: certs,
		Resumes:        resumes,
		Readiness:      *readiness,
	}, nil
}

func (s *readinessService) evaluate(userID uint, summary repositories.UserScoreSummary) *ReadinessResult {
	total := computeReadiness(summary)
	tier := s.policy.Evaluate(total)

	return &ReadinessResult{
		UserID:          userID,
		ResumeAverage:   summary.ResumeAverage,
		AptitudeAverage: summary.AptitudeAverage,
		Certifications:  summary.CertificationCount,
		Readiness:       total,
		Tier:            tier.Label,
		Feedback:        tier.Message,
	}
}
