package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/datatypes"

	"github.com/placeprep/readiness-service/internal/cache"
	"github.com/placeprep/readiness-service/internal/events"
	"github.com/placeprep/readiness-service/internal/models"
	"github.com/placeprep/readiness-service/internal/repositories"
	"github.com/placeprep/readiness-service/internal/resume"
	"github.com/placeprep/readiness-service/internal/validator"
)

type recordService struct {
	repo       repositories.Repository
	statsCache *cache.CacheHelper
	publisher  events.EventPublisher
	logger     *slog.Logger
	validator  *validator.Validator

	now func() time.Time
}

func NewRecordService(
	repo repositories.Repository,
	statsCache *cache.CacheHelper,
	publisher events.EventPublisher,
	logger *slog.Logger,
	v *validator.Validator,
) RecordService {
	return &recordService{
		repo:       repo,
		statsCache: statsCache,
		publisher:  publisher,
		logger:     logger,
		validator:  v,
		now:        time.Now,
	}
}

// AddAptitude logs a mock-test score stamped with the current date.
func (s *recordService) AddAptitude(ctx context.Context, userID uint, req AddAptitudeRequest) (*models.AptitudeRecord, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	record := &models.AptitudeRecord{
		UserID:   userID,
		Score:    req.Score,
		TestDate: s.now(),
	}

	if err := s.repo.Aptitude().Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to add aptitude record: %w", err)
	}

	s.afterInsert(ctx, userID, events.TypeAptitudeAdded, events.RecordEvent{
		UserID:   userID,
		RecordID: record.ID,
		Kind:     "aptitude",
		Score:    &record.Score,
	})

	return record, nil
}

// AddCertification logs an earned certification stamped with the current date.
func (s *recordService) AddCertification(ctx context.Context, userID uint, req AddCertificationRequest) (*models.CertificationRecord, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	record := &models.CertificationRecord{
		UserID:     userID,
		Title:      req.Title,
		EarnedDate: s.now(),
	}

	if err := s.repo.Certification().Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to add certification record: %w", err)
	}

	s.afterInsert(ctx, userID, events.TypeCertificationAdded, events.RecordEvent{
		UserID:   userID,
		RecordID: record.ID,
		Kind:     "certification",
	})

	return record, nil
}

// UploadResume runs the extract-and-score pipeline over an uploaded file and
// persists the result. Extraction failure is recoverable: the upload is
// scored as zero and a warning is returned instead of failing the request.
func (s *recordService) UploadResume(ctx context.Context, userID uint, filename, path string) (*ResumeUploadResult, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	var warning string

	text, err := resume.ExtractText(path)
	if err != nil {
		s.logger.Warn("resume extraction failed", "user_id", userID, "filename", filename, "error", err)
		warning = "could not read the uploaded file; resume scored as 0"
		text = ""
	}

	score, matched := resume.Score(text)

	matchedJSON, err := json.Marshal(matched)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal matched skills: %w", err)
	}

	record := &models.ResumeRecord{
		UserID:        userID,
		Filename:      filename,
		Score:         score,
		MatchedSkills: datatypes.JSON(matchedJSON),
	}

	if err := s.repo.Resume().Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to add resume record: %w", err)
	}

	s.afterInsert(ctx, userID, events.TypeResumeScored, events.RecordEvent{
		UserID:   userID,
		RecordID: record.ID,
		Kind:     "resume",
		Score:    &record.Score,
	})

	return &ResumeUploadResult{
		Record:        record,
		MatchedSkills: matched,
		Warning:       warning,
	}, nil
}

func (s *recordService) ensureUser(ctx context.Context, userID uint) error {
	if _, err := s.repo.User().GetByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to verify user: %w", err)
	}
	return nil
}

// afterInsert invalidates the user's cached aggregates and publishes the
// record event. Neither failure aborts the request.
func (s *recordService) afterInsert(ctx context.Context, userID uint, eventType string, data events.RecordEvent) {
	cache.InvalidateUserScores(ctx, s.statsCache, userID)

	if err := s.publisher.Publish(ctx, eventType, data); err != nil {
		s.logger.Warn("failed to publish record event", "type", eventType, "error", err)
	}
}
