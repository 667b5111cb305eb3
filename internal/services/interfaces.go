package services

import (
	"context"

	"github.com/placeprep/readiness-service/internal/models"
)

// ===== REQUEST/RESPONSE DTOs =====

type RegisterRequest = models.RegisterRequest
type LoginRequest = models.LoginRequest
type AdminLoginRequest = models.AdminLoginRequest
type AddAptitudeRequest = models.AddAptitudeRequest
type AddCertificationRequest = models.AddCertificationRequest

// ReadinessResult is one computed readiness evaluation.
type ReadinessResult struct {
	UserID          uint    `json:"user_id"`
	ResumeAverage   float64 `json:"resume_average"`
	AptitudeAverage float64 `json:"aptitude_average"`
	Certifications  int64   `json:"certifications"`
	Readiness       float64 `json:"readiness"`
	Tier            string  `json:"tier"`
	Feedback        string  `json:"feedback"`
}

// DashboardResponse is the logged-in student's view: record history plus
// the computed readiness.
type DashboardResponse struct {
	UserName       string                        `json:"user_name"`
	Aptitude       []*models.AptitudeRecord      `json:"aptitude_records"`
	Certifications []*models.CertificationRecord `json:"certification_records"`
	Resumes        []*models.ResumeRecord        `json:"resume_records"`
	Readiness      ReadinessResult               `json:"readiness"`
}

// ResumeUploadResult reports the outcome of the extract-and-score pipeline.
// Warning is set when extraction failed and the upload was scored as zero.
type ResumeUploadResult struct {
	Record        *models.ResumeRecord `json:"record"`
	MatchedSkills []string             `json:"matched_skills"`
	Warning       string               `json:"warning,omitempty"`
}

// ReportRow is one aggregated line of the admin report. Display fields are
// rounded to 1 decimal place.
type ReportRow struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	ResumeScore    float64 `json:"resume_score"`
	AptitudeScore  float64 `json:"aptitude_score"`
	Certifications int64   `json:"certifications"`
	TotalReadiness float64 `json:"total_readiness"`
}

// AdminDashboardResponse carries the full table (user-id order) and the
// top-3 leaderboard (descending readiness).
type AdminDashboardResponse struct {
	Rows          []ReportRow `json:"rows"`
	TopPerformers []ReportRow `json:"top_performers"`
}

// ExportResult reports a written report file.
type ExportResult struct {
	Filename string `json:"filename"`
	Rows     int    `json:"rows"`
}

// ===== SERVICE INTERFACES =====

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req LoginRequest) (*models.User, error)
	AdminLogin(ctx context.Context, req AdminLoginRequest) error
}

type RecordService interface {
	AddAptitude(ctx context.Context, userID uint, req AddAptitudeRequest) (*models.AptitudeRecord, error)
	AddCertification(ctx context.Context, userID uint, req AddCertificationRequest) (*models.CertificationRecord, error)
	UploadResume(ctx context.Context, userID uint, filename, path string) (*ResumeUploadResult, error)
}

type ReadinessService interface {
	GetReadiness(ctx context.Context, userID uint) (*ReadinessResult, error)
	GetDashboard(ctx context.Context, userID uint) (*DashboardResponse, error)
}

type LeaderboardService interface {
	GetAdminDashboard(ctx context.Context) (*AdminDashboardResponse, error)
	BuildReportRows(ctx context.Context) ([]ReportRow, error)
}

type ExportService interface {
	ExportCSV(ctx context.Context) (*ExportResult, error)
	ExportXLSX(ctx context.Context) (*ExportResult, error)
}

type StoreService interface {
	// Reset drops and recreates all storage. Admin-only; no undo.
	Reset(ctx context.Context) error
}

// ServiceManager wires and owns all service instances.
type ServiceManager interface {
	Auth() AuthService
	Record() RecordService
	Readiness() ReadinessService
	Leaderboard() LeaderboardService
	Export() ExportService
	Store() StoreService

	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
