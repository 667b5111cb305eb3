package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/placeprep/readiness-service/internal/cache"
	"github.com/placeprep/readiness-service/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func seedUser(t *testing.T, repo *MockRepository, name, email string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email, PasswordHash: "x"}
	if err := repo.User().Create(context.Background(), user); err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return user
}

func TestReadinessService_GetReadiness(t *testing.T) {
	logger := testLogger()
	repo := NewMockRepository()
	statsCache := cache.NewStatsCache(nil)
	service := NewReadinessService(repo, statsCache, standardPolicy, logger)

	ctx := context.Background()
	user := seedUser(t, repo, "Asha", "asha@example.com")

	t.Run("new user scores zero in lowest tier", func(t *testing.T) {
		result, err := service.GetReadiness(ctx, user.ID)
		if err != nil {
			t.Fatalf("Failed to get readiness: %v", err)
		}
		if result.Readiness != 0 {
			t.Errorf("Expected readiness 0, got %v", result.Readiness)
		}
		if result.Tier != "Low" {
			t.Errorf("Expected Low tier, got %q", result.Tier)
		}
	})

	t.Run("weighted formula over stored records", func(t *testing.T) {
		// Resume avg 90, aptitude avg 80, 2 certifications:
		// 0.4*90 + 0.4*80 + 10*2 = 88.00
		repo.Resume().Create(ctx, &models.ResumeRecord{UserID: user.ID, Filename: "a.pdf", Score: 90})
		repo.Aptitude().Create(ctx, &models.AptitudeRecord{UserID: user.ID, Score: 70, TestDate: time.Now()})
		repo.Aptitude().Create(ctx, &models.AptitudeRecord{UserID: user.ID, Score: 90, TestDate: time.Now()})
		repo.Certification().Create(ctx, &models.CertificationRecord{UserID: user.ID, Title: "AWS", EarnedDate: time.Now()})
		repo.Certification().Create(ctx, &models.CertificationRecord{UserID: user.ID, Title: "GCP", EarnedDate: time.Now()})

		result, err := service.GetReadiness(ctx, user.ID)
		if err != nil {
			t.Fatalf("Failed to get readiness: %v", err)
		}
		if result.Readiness != 88 {
			t.Errorf("Expected readiness 88, got %v", result.Readiness)
		}
		if result.Tier != "Excellent" {
			t.Errorf("Expected Excellent tier, got %q", result.Tier)
		}
		if result.AptitudeAverage != 80 {
			t.Errorf("Expected aptitude average 80, got %v", result.AptitudeAverage)
		}
		if result.Certifications != 2 {
			t.Errorf("Expected 2 certifications, got %d", result.Certifications)
		}
	})
}

func TestReadinessService_GetDashboard(t *testing.T) {
	logger := testLogger()
	repo := NewMockRepository()
	service := NewReadinessService(repo, cache.NewStatsCache(nil), standardPolicy, logger)

	ctx := context.Background()
	user := seedUser(t, repo, "Ravi", "ravi@example.com")

	repo.Aptitude().Create(ctx, &models.AptitudeRecord{UserID: user.ID, Score: 60, TestDate: time.Now()})
	repo.Resume().Create(ctx, &models.ResumeRecord{UserID: user.ID, Filename: "cv.docx", Score: 50})

	dashboard, err := service.GetDashboard(ctx, user.ID)
	if err != nil {
		t.Fatalf("Failed to get dashboard: %v", err)
	}

	if dashboard.UserName != "Ravi" {
		t.Errorf("Expected user name Ravi, got %q", dashboard.UserName)
	}
	if len(dashboard.Aptitude) != 1 {
		t.Errorf("Expected 1 aptitude record, got %d", len(dashboard.Aptitude))
	}
	if len(dashboard.Resumes) != 1 {
		t.Errorf("Expected 1 resume record, got %d", len(dashboard.Resumes))
	}
	if len(dashboard.Certifications) != 0 {
		t.Errorf("Expected no certification records, got %d", len(dashboard.Certifications))
	}
	// 0.4*50 + 0.4*60 = 44.00
	if dashboard.Readiness.Readiness != 44 {
		t.Errorf("Expected readiness 44, got %v", dashboard.Readiness.Readiness)
	}
}

func TestReadinessService_GetDashboard_UnknownUser(t *testing.T) {
	service := NewReadinessService(NewMockRepository(), cache.NewStatsCache(nil), standardPolicy, testLogger())

	_, err := service.GetDashboard(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
