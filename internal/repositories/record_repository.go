package repositories

import (
	"context"

	"github.com/placeprep/readiness-service/internal/models"
)

// Record repositories are insert-and-list only: history tables are
// append-only and current state is derived by aggregation.

type AptitudeRepository interface {
	Create(ctx context.Context, record *models.AptitudeRecord) error
	ListByUser(ctx context.Context, userID uint) ([]*models.AptitudeRecord, error)
}

type CertificationRepository interface {
	Create(ctx context.Context, record *models.CertificationRecord) error
	ListByUser(ctx context.Context, userID uint) ([]*models.CertificationRecord, error)
}

type ResumeRepository interface {
	Create(ctx context.Context, record *models.ResumeRecord) error
	ListByUser(ctx context.Context, userID uint) ([]*models.ResumeRecord, error)
}
