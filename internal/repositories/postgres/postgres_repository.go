package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/placeprep/readiness-service/internal/models"
	"github.com/placeprep/readiness-service/internal/repositories"
)

// PostgreSQLRepository implements the main Repository interface.
type PostgreSQLRepository struct {
	db *gorm.DB

	user          repositories.UserRepository
	aptitude      repositories.AptitudeRepository
	certification repositories.CertificationRepository
	resume        repositories.ResumeRepository
	report        repositories.ReportRepository
}

// RepositoryConfig holds configuration for repository initialization.
type RepositoryConfig struct {
	DB *gorm.DB
}

// NewPostgreSQLRepository creates a repository with all sub-repositories.
func NewPostgreSQLRepository(config RepositoryConfig) repositories.Repository {
	return newWithDB(config.DB)
}

func newWithDB(db *gorm.DB) *PostgreSQLRepository {
	return &PostgreSQLRepository{
		db:            db,
		user:          NewUserPostgreSQL(db),
		aptitude:      NewAptitudePostgreSQL(db),
		certification: NewCertificationPostgreSQL(db),
		resume:        NewResumePostgreSQL(db),
		report:        NewReportPostgreSQL(db),
	}
}

func (r *PostgreSQLRepository) User() repositories.UserRepository { return r.user }

func (r *PostgreSQLRepository) Aptitude() repositories.AptitudeRepository { return r.aptitude }

func (r *PostgreSQLRepository) Certification() repositories.CertificationRepository {
	return r.certification
}

func (r *PostgreSQLRepository) Resume() repositories.ResumeRepository { return r.resume }

func (r *PostgreSQLRepository) Report() repositories.ReportRepository { return r.report }

// Reset drops and recreates every table. There is no undo.
func (r *PostgreSQLRepository) Reset(ctx context.Context) error {
	db := r.db.WithContext(ctx)

	tables := []interface{}{
		&models.ResumeRecord{},
		&models.CertificationRecord{},
		&models.AptitudeRecord{},
		&models.User{},
	}

	if err := db.Migrator().DropTable(tables...); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.AptitudeRecord{},
		&models.CertificationRecord{},
		&models.ResumeRecord{},
	); err != nil {
		return fmt.Errorf("failed to recreate tables: %w", err)
	}

	return nil
}

// WithTransaction executes a function within a database transaction.
func (r *PostgreSQLRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newWithDB(tx))
	})
}

// Ping checks the health of the database connection.
func (r *PostgreSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (r *PostgreSQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}

// RepositoryManager implements the RepositoryManager interface.
type RepositoryManager struct {
	config RepositoryConfig
	repo   repositories.Repository
}

func NewRepositoryManager(config RepositoryConfig) repositories.RepositoryManager {
	return &RepositoryManager{config: config}
}

// Initialize validates the connection and builds the repository.
func (rm *RepositoryManager) Initialize() error {
	if rm.config.DB == nil {
		return fmt.Errorf("database connection is required")
	}

	sqlDB, err := rm.config.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}

	rm.repo = NewPostgreSQLRepository(rm.config)

	return nil
}

func (rm *RepositoryManager) GetRepository() repositories.Repository {
	return rm.repo
}

func (rm *RepositoryManager) HealthCheck(ctx context.Context) error {
	if rm.repo == nil {
		return fmt.Errorf("repository not initialized")
	}
	return rm.repo.Ping(ctx)
}

func (rm *RepositoryManager) Shutdown(ctx context.Context) error {
	if rm.repo == nil {
		return nil
	}
	return rm.repo.Close()
}
