package repositories

import "context"

// UserScoreSummary holds the per-user aggregates the readiness formula
// consumes. Averages are 0 when the user has no records of that kind.
type UserScoreSummary struct {
	AptitudeAverage    float64 `json:"aptitude_average"`
	CertificationCount int64   `json:"certification_count"`
	ResumeAverage      float64 `json:"resume_average"`
}

// ReportRepository exposes the AVG/COUNT aggregates behind the readiness
// calculator and the admin report.
type ReportRepository interface {
	GetAptitudeAverage(ctx context.Context, userID uint) (float64, error)
	GetCertificationCount(ctx context.Context, userID uint) (int64, error)
	GetResumeAverage(ctx context.Context, userID uint) (float64, error)

	// GetUserScores bundles the three aggregates for one user.
	GetUserScores(ctx context.Context, userID uint) (*UserScoreSummary, error)
}
