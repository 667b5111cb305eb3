package repositories

import "context"

// Repository aggregates all per-domain repositories.
type Repository interface {
	// User domain
	User() UserRepository

	// Record history domain
	Aptitude() AptitudeRepository
	Certification() CertificationRepository
	Resume() ResumeRepository

	// Per-user aggregates for readiness and reporting
	Report() ReportRepository

	// Reset drops and recreates every table. Destructive, admin-only.
	Reset(ctx context.Context) error

	// Transaction support
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager manages repository lifecycle.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
