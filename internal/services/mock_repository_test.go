package services

import (
	"context"
	"sync"

	"github.com/placeprep/readiness-service/internal/models"
	"github.com/placeprep/readiness-service/internal/repositories"
)

// MockRepository is an in-memory Repository for testing. Aggregates are
// computed from the stored records, matching the SQL behavior.
type MockRepository struct {
	mu sync.Mutex

	nextUserID   uint
	nextRecordID uint
	users        []*models.User
	aptitude     map[uint][]*models.AptitudeRecord
	certs        map[uint][]*models.CertificationRecord
	resumes      map[uint][]*models.ResumeRecord

	ResetCalled bool
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		aptitude: make(map[uint][]*models.AptitudeRecord),
		certs:    make(map[uint][]*models.CertificationRecord),
		resumes:  make(map[uint][]*models.ResumeRecord),
	}
}

func (m *MockRepository) User() repositories.UserRepository { return &mockUserRepo{m} }
func (m *MockRepository) Aptitude() repositories.AptitudeRepository {
	return &mockAptitudeRepo{m}
}
func (m *MockRepository) Certification() repositories.CertificationRepository {
	return &mockCertificationRepo{m}
}
func (m *MockRepository) Resume() repositories.ResumeRepository { return &mockResumeRepo{m} }
func (m *MockRepository) Report() repositories.ReportRepository { return &mockReportRepo{m} }

func (m *MockRepository) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = nil
	m.aptitude = make(map[uint][]*models.AptitudeRecord)
	m.certs = make(map[uint][]*models.CertificationRecord)
	m.resumes = make(map[uint][]*models.ResumeRecord)
	m.ResetCalled = true
	return nil
}

func (m *MockRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(m)
}
func (m *MockRepository) Ping(_ context.Context) error { return nil }
func (m *MockRepository) Close() error                 { return nil }

// ===== USER =====

type mockUserRepo struct{ m *MockRepository }

func (r *mockUserRepo) Create(_ context.Context, user *models.User) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, u := range r.m.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicateEmail
		}
	}
	r.m.nextUserID++
	user.ID = r.m.nextUserID
	r.m.users = append(r.m.users, user)
	return nil
}

func (r *mockUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, u := range r.m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, u := range r.m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *mockUserRepo) List(_ context.Context) ([]*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]*models.User, len(r.m.users))
	copy(out, r.m.users)
	return out, nil
}

// ===== RECORDS =====

type mockAptitudeRepo struct{ m *MockRepository }

func (r *mockAptitudeRepo) Create(_ context.Context, record *models.AptitudeRecord) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.nextRecordID++
	record.ID = r.m.nextRecordID
	r.m.aptitude[record.UserID] = append(r.m.aptitude[record.UserID], record)
	return nil
}

func (r *mockAptitudeRepo) ListByUser(_ context.Context, userID uint) ([]*models.AptitudeRecord, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return r.m.aptitude[userID], nil
}

type mockCertificationRepo struct{ m *MockRepository }

func (r *mockCertificationRepo) Create(_ context.Context, record *models.CertificationRecord) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.nextRecordID++
	record.ID = r.m.nextRecordID
	r.m.certs[record.UserID] = append(r.m.certs[record.UserID], record)
	return nil
}

func (r *mockCertificationRepo) ListByUser(_ context.Context, userID uint) ([]*models.CertificationRecord, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return r.m.certs[userID], nil
}

type mockResumeRepo struct{ m *MockRepository }

func (r *mockResumeRepo) Create(_ context.Context, record *models.ResumeRecord) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.nextRecordID++
	record.ID = r.m.nextRecordID
	r.m.resumes[record.UserID] = append(r.m.resumes[record.UserID], record)
	return nil
}

func (r *mockResumeRepo) ListByUser(_ context.Context, userID uint) ([]*models.ResumeRecord, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return r.m.resumes[userID], nil
}

// ===== REPORT =====

type mockReportRepo struct{ m *MockRepository }

func (r *mockReportRepo) GetAptitudeAverage(_ context.Context, userID uint) (float64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	records := r.m.aptitude[userID]
	if len(records) == 0 {
		return 0, nil
	}
	var sum int
	for _, rec := range records {
		sum += rec.Score
	}
	return float64(sum) / float64(len(records)), nil
}

func (r *mockReportRepo) GetCertificationCount(_ context.Context, userID uint) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return int64(len(r.m.certs[userID])), nil
}

func (r *mockReportRepo) GetResumeAverage(_ context.Context, userID uint) (float64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	records := r.m.resumes[userID]
	if len(records) == 0 {
		return 0, nil
	}
	var sum int
	for _, rec := range records {
		sum += rec.Score
	}
	return float64(sum) / float64(len(records)), nil
}

func (r *mockReportRepo) GetUserScores(ctx context.Context, userID uint) (*repositories.UserScoreSummary, error) {
	aptitude, err := r.GetAptitudeAverage(ctx, userID)
	if err != nil {
		return nil, err
	}
	certs, err := r.GetCertificationCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	resumeAvg, err := r.GetResumeAverage(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &repositories.UserScoreSummary{
		AptitudeAverage:    aptitude,
		CertificationCount: certs,
		ResumeAverage:      resumeAvg,
	}, nil
}
