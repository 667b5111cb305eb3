package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/placeprep/readiness-service/internal/cache"
	"github.com/placeprep/readiness-service/internal/config"
	"github.com/placeprep/readiness-service/internal/events"
	"github.com/placeprep/readiness-service/internal/repositories"
	"github.com/placeprep/readiness-service/internal/validator"
)

// ServiceManagerConfig carries the knobs the services need beyond their
// repositories.
type ServiceManagerConfig struct {
	Admin      config.AdminConfig
	TierPreset string
	ExportDir  string
}

type serviceManager struct {
	repo       repositories.Repository
	statsCache *cache.CacheHelper
	publisher  events.EventPublisher
	logger     *slog.Logger
	validator  *validator.Validator
	config     ServiceManagerConfig

	authService        AuthService
	recordService      RecordService
	readinessService   ReadinessService
	leaderboardService LeaderboardService
	exportService      ExportService
	storeService       StoreService

	mu          sync.RWMutex
	initialized bool
}

// NewDefaultServiceManager creates a service manager with the default
// service wiring.
func NewDefaultServiceManager(
	repo repositories.Repository,
	statsCache *cache.CacheHelper,
	publisher events.EventPublisher,
	logger *slog.Logger,
	v *validator.Validator,
	cfg ServiceManagerConfig,
) ServiceManager {
	return &serviceManager{
		repo:       repo,
		statsCache: statsCache,
		publisher:  publisher,
		logger:     logger,
		validator:  v,
		config:     cfg,
	}
}

// Initialize builds all service instances. Must be called before any
// accessor.
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	policy, err := PolicyForPreset(sm.config.TierPreset)
	if err != nil {
		return fmt.Errorf("failed to resolve tier policy: %w", err)
	}

	sm.authService = NewAuthService(sm.repo, sm.publisher, sm.logger, sm.validator, sm.config.Admin)
	sm.recordService = NewRecordService(sm.repo, sm.statsCache, sm.publisher, sm.logger, sm.validator)
	sm.readinessService = NewReadinessService(sm.repo, sm.statsCache, policy, sm.logger)
	sm.leaderboardService = NewLeaderboardService(sm.repo, sm.logger)
	sm.exportService = NewExportService(sm.leaderboardService, sm.publisher, sm.logger, sm.config.ExportDir)
	sm.storeService = NewStoreService(sm.repo, sm.statsCache, sm.publisher, sm.logger)

	if err := sm.repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}

	sm.initialized = true
	sm.logger.Info("services initialized", "tier_preset", policy.Name)

	return nil
}

func (sm *serviceManager) Auth() AuthService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.authService
}

func (sm *serviceManager) Record() RecordService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.recordService
}

func (sm *serviceManager) Readiness() ReadinessService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.readinessService
}

func (sm *serviceManager) Leaderboard() LeaderboardService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.leaderboardService
}

func (sm *serviceManager) Export() ExportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.exportService
}

func (sm *serviceManager) Store() StoreService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.storeService
}

// Shutdown flushes the event publisher.
func (sm *serviceManager) Shutdown(_ context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return nil
	}

	if err := sm.publisher.Close(); err != nil {
		return fmt.Errorf("failed to close event publisher: %w", err)
	}

	sm.initialized = false
	return nil
}
