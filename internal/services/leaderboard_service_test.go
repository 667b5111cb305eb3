package services

import (
	"context"
	"testing"
	"time"

	"github.com/placeprep/readiness-service/internal/models"
)

// seedScoredUser creates a user with one resume score, one aptitude score
// and the given number of certifications, so their readiness is
// 0.4*resume + 0.4*aptitude + 10*certs.
func seedScoredUser(t *testing.T, repo *MockRepository, name string, resumeScore, aptitudeScore, certs int) *models.User {
	t.Helper()
	ctx := context.Background()

	user := seedUser(t, repo, name, name+"@example.com")
	if err := repo.Resume().Create(ctx, &models.ResumeRecord{UserID: user.ID, Filename: "cv.pdf", Score: resumeScore}); err != nil {
		t.Fatalf("Failed to seed resume: %v", err)
	}
	if err := repo.Aptitude().Create(ctx, &models.AptitudeRecord{UserID: user.ID, Score: aptitudeScore, TestDate: time.Now()}); err != nil {
		t.Fatalf("Failed to seed aptitude: %v", err)
	}
	for i := 0; i < certs; i++ {
		if err := repo.Certification().Create(ctx, &models.CertificationRecord{UserID: user.ID, Title: "Cert", EarnedDate: time.Now()}); err != nil {
			t.Fatalf("Failed to seed certification: %v", err)
		}
	}
	return user
}

func TestLeaderboardService_BuildReportRows(t *testing.T) {
	repo := NewMockRepository()
	service := NewLeaderboardService(repo, testLogger())
	ctx := context.Background()

	seedScoredUser(t, repo, "low", 40, 40, 0)   // 32.0
	seedScoredUser(t, repo, "high", 90, 90, 2)  // 92.0
	seedScoredUser(t, repo, "mid", 70, 60, 1)   // 62.0
	seedUser(t, repo, "empty", "e@example.com") // 0.0

	rows, err := service.BuildReportRows(ctx)
	if err != nil {
		t.Fatalf("Failed to build report rows: %v", err)
	}

	if len(rows) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(rows))
	}

	// Rows come back in user-id (registration) order, not ranked.
	wantOrder := []string{"low", "high", "mid", "empty"}
	for i, want := range wantOrder {
		if rows[i].Name != want {
			t.Errorf("Expected row %d to be %q, got %q", i, want, rows[i].Name)
		}
	}

	if rows[1].TotalReadiness != 92 {
		t.Errorf("Expected readiness 92 for high, got %v", rows[1].TotalReadiness)
	}
	if rows[3].TotalReadiness != 0 {
		t.Errorf("Expected readiness 0 for empty user, got %v", rows[3].TotalReadiness)
	}
	if rows[3].ResumeScore != 0 || rows[3].AptitudeScore != 0 {
		t.Errorf("Expected zero averages for empty user, got %v / %v", rows[3].ResumeScore, rows[3].AptitudeScore)
	}
}

func TestLeaderboardService_GetAdminDashboard(t *testing.T) {
	repo := NewMockRepository()
	service := NewLeaderboardService(repo, testLogger())
	ctx := context.Background()

	seedScoredUser(t, repo, "fourth", 40, 40, 0) // 32.0
	seedScoredUser(t, repo, "first", 90, 90, 2)  // 92.0
	seedScoredUser(t, repo, "third", 60, 60, 0)  // 48.0
	seedScoredUser(t, repo, "second", 70, 60, 1) // 62.0

	dashboard, err := service.GetAdminDashboard(ctx)
	if err != nil {
		t.Fatalf("Failed to get admin dashboard: %v", err)
	}

	if len(dashboard.Rows) != 4 {
		t.Errorf("Expected 4 rows, got %d", len(dashboard.Rows))
	}
	if len(dashboard.TopPerformers) != 3 {
		t.Fatalf("Expected top 3, got %d", len(dashboard.TopPerformers))
	}

	wantTop := []string{"first", "second", "third"}
	for i, want := range wantTop {
		if dashboard.TopPerformers[i].Name != want {
			t.Errorf("Expected top performer %d to be %q, got %q", i, want, dashboard.TopPerformers[i].Name)
		}
	}

	// The full table keeps registration order even after ranking.
	if dashboard.Rows[0].Name != "fourth" {
		t.Errorf("Expected first row to be fourth (registration order), got %q", dashboard.Rows[0].Name)
	}
}

func TestLeaderboardService_TiesKeepRegistrationOrder(t *testing.T) {
	repo := NewMockRepository()
	service := NewLeaderboardService(repo, testLogger())
	ctx := context.Background()

	seedScoredUser(t, repo, "older", 80, 80, 1) // 74.0
	seedScoredUser(t, repo, "newer", 80, 80, 1) // 74.0

	dashboard, err := service.GetAdminDashboard(ctx)
	if err != nil {
		t.Fatalf("Failed to get admin dashboard: %v", err)
	}

	if dashboard.TopPerformers[0].Name != "older" || dashboard.TopPerformers[1].Name != "newer" {
		t.Errorf("Expected stable tie order [older newer], got [%s %s]",
			dashboard.TopPerformers[0].Name, dashboard.TopPerformers[1].Name)
	}
}

func TestLeaderboardService_FewerUsersThanLeaderboard(t *testing.T) {
	repo := NewMockRepository()
	service := NewLeaderboardService(repo, testLogger())

	seedScoredUser(t, repo, "only", 50, 50, 0)

	dashboard, err := service.GetAdminDashboard(context.Background())
	if err != nil {
		t.Fatalf("Failed to get admin dashboard: %v", err)
	}
	if len(dashboard.TopPerformers) != 1 {
		t.Errorf("Expected 1 top performer, got %d", len(dashboard.TopPerformers))
	}
}
