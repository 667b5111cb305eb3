package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/placeprep/readiness-service/internal/models"
	"github.com/placeprep/readiness-service/internal/repositories"
)

// ===== APTITUDE =====

type aptitudeRepository struct {
	db *gorm.DB
}

func NewAptitudePostgreSQL(db *gorm.DB) repositories.AptitudeRepository {
	return &aptitudeRepository{db: db}
}

func (r *aptitudeRepository) Create(ctx context.Context, record *models.AptitudeRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create aptitude record: %w", err)
	}
	return nil
}

func (r *aptitudeRepository) ListByUser(ctx context.Context, userID uint) ([]*models.AptitudeRecord, error) {
	var records []*models.AptitudeRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list aptitude records: %w", err)
	}
	return records, nil
}

// ===== CERTIFICATION =====

type certificationRepository struct {
	db *gorm.DB
}

func NewCertificationPostgreSQL(db *gorm.DB) repositories.CertificationRepository {
	return &certificationRepository{db: db}
}

func (r *certificationRepository) Create(ctx context.Context, record *models.CertificationRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create certification record: %w", err)
	}
	return nil
}

func (r *certificationRepository) ListByUser(ctx context.Context, userID uint) ([]*models.CertificationRecord, error) {
	var records []*models.CertificationRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list certification records: %w", err)
	}
	return records, nil
}

// ===== RESUME =====

type resumeRepository struct {
	db *gorm.DB
}

func NewResumePostgreSQL(db *gorm.DB) repositories.ResumeRepository {
	return &resumeRepository{db: db}
}

func (r *resumeRepository) Create(ctx context.Context, record *models.ResumeRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create resume record: %w", err)
	}
	return nil
}

func (r *resumeRepository) ListByUser(ctx context.Context, userID uint) ([]*models.ResumeRecord, error) {
	var records []*models.ResumeRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list resume records: %w", err)
	}
	return records, nil
}
