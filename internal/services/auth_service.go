package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/placeprep/readiness-service/internal/config"
	"github.com/placeprep/readiness-service/internal/events"
	"github.com/placeprep/readiness-service/internal/models"
	"github.com/placeprep/readiness-service/internal/repositories"
	"github.com/placeprep/readiness-service/internal/validator"
)

type authService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
	admin     config.AdminConfig
}

func NewAuthService(
	repo repositories.Repository,
	publisher events.EventPublisher,
	logger *slog.Logger,
	v *validator.Validator,
	admin config.AdminConfig,
) AuthService {
	return &authService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: v,
		admin:     admin,
	}
}

// Register creates a user with a bcrypt password hash. Duplicate emails
// fail with ErrEmailTaken.
func (s *authService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	email := normalizeEmail(req.Email)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.repo.User().Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID)

	if err := s.publisher.Publish(ctx, events.TypeUserRegistered, events.UserEvent{UserID: user.ID, Email: user.Email}); err != nil {
		s.logger.Warn("failed to publish registration event", "error", err)
	}

	return user, nil
}

// Login authenticates an email/password pair against the stored hash.
func (s *authService) Login(ctx context.Context, req LoginRequest) (*models.User, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	user, err := s.repo.User().GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// AdminLogin checks the fixed administrator credentials with constant-time
// comparison. The admin is never a user row.
func (s *authService) AdminLogin(ctx context.Context, req AdminLoginRequest) error {
	if errs := s.validator.Validate(req); errs != nil {
		return fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	emailOK := subtle.ConstantTimeCompare([]byte(normalizeEmail(req.Email)), []byte(normalizeEmail(s.admin.Email)))
	passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.admin.Password))

	if emailOK&passwordOK != 1 {
		return ErrInvalidCredentials
	}

	s.logger.Info("admin logged in")
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
