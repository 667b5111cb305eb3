package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/placeprep/readiness-service/internal/repositories"
)

// leaderboardSize is how many top performers the admin dashboard surfaces.
const leaderboardSize = 3

type leaderboardService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewLeaderboardService(repo repositories.Repository, logger *slog.Logger) LeaderboardService {
	return &leaderboardService{repo: repo, logger: logger}
}

// BuildReportRows runs the readiness formula for every user, one round trip
// per user; fine at this data scale. Rows come back in user-id order with
// display fields rounded to 1 decimal place.
func (s *leaderboardService) BuildReportRows(ctx context.Context) ([]ReportRow, error) {
	users, err := s.repo.User().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	rows := make([]ReportRow, 0, len(users))
	for _, user := range users {
		summary, err := s.repo.Report().GetUserScores(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get scores for user %d: %w", user.ID, err)
		}

		rows = append(rows, ReportRow{
			Name:           user.Name,
			Email:          user.Email,
			ResumeScore:    roundFloat(summary.ResumeAverage, 1),
			AptitudeScore:  roundFloat(summary.AptitudeAverage, 1),
			Certifications: summary.CertificationCount,
			TotalReadiness: roundFloat(computeReadiness(*summary), 1),
		})
	}

	return rows, nil
}

// GetAdminDashboard returns the full table in user-id order and the top-3
// leaderboard sorted descending by readiness. The sort is stable: ties keep
// their original order.
func (s *leaderboardService) GetAdminDashboard(ctx context.Context) (*AdminDashboardResponse, error) {
	rows, err := s.BuildReportRows(ctx)
	if err != nil {
		return nil, err
	}

	ranked := make([]ReportRow, len(rows))
	copy(ranked, rows)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalReadiness > ranked[j].TotalReadiness
	})

	top := ranked
	if len(top) > leaderboardSize {
		top = top[:leaderboardSize]
	}

	return &AdminDashboardResponse{
		Rows:          rows,
		TopPerformers: top,
	}, nil
}
