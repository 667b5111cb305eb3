package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/placeprep/readiness-service/internal/models"
	"github.com/placeprep/readiness-service/internal/repositories"
)

type reportRepository struct {
	db *gorm.DB
}

func NewReportPostgreSQL(db *gorm.DB) repositories.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) GetAptitudeAverage(ctx context.Context, userID uint) (float64, error) {
	var result struct {
		AvgScore float64
	}

	// COALESCE keeps the average at 0 for users with no records.
	if err := r.db.WithContext(ctx).
		Model(&models.AptitudeRecord{}).
		Where("user_id = ?", userID).
		Select("COALESCE(AVG(score), 0) as avg_score").
		Scan(&result).Error; err != nil {
		return 0, fmt.Errorf("failed to get aptitude average: %w", err)
	}

	return result.AvgScore, nil
}

func (r *reportRepository) GetCertificationCount(ctx context.Context, userID uint) (int64, error) {
	var count int64

	if err := r.db.WithContext(ctx).
		Model(&models.CertificationRecord{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to get certification count: %w", err)
	}

	return count, nil
}

func (r *reportRepository) GetResumeAverage(ctx context.Context, userID uint) (float64, error) {
	var result struct {
		AvgScore float64
	}

	if err := r.db.WithContext(ctx).
		Model(&models.ResumeRecord{}).
		Where("user_id = ?", userID).
		Select("COALESCE(AVG(score), 0) as avg_score").
		Scan(&result).Error; err != nil {
		return 0, fmt.Errorf("failed to get resume average: %w", err)
	}

	return result.AvgScore, nil
}

func (r *reportRepository) GetUserScores(ctx context.Context, userID uint) (*repositories.UserScoreSummary, error) {
	aptitude, err := r.GetAptitudeAverage(ctx, userID)
	if err != nil {
		return nil, err
	}

	certs, err := r.GetCertificationCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	resume, err := r.GetResumeAverage(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &repositories.UserScoreSummary{
		AptitudeAverage:    aptitude,
		CertificationCount: certs,
		ResumeAverage:      resume,
	}, nil
}
