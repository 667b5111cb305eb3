package events

import (
	"time"
)

// Source identifies this service in published events.
const Source = "readiness-service"

// Event types published on domain activity.
const (
	TypeUserRegistered     = "user.registered"
	TypeAptitudeAdded      = "record.aptitude_added"
	TypeCertificationAdded = "record.certification_added"
	TypeResumeScored       = "resume.scored"
	TypeReportExported     = "report.exported"
	TypeStoreReset         = "store.reset"
)

// Event is the envelope for every domain event.
type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	Source     string      `json:"source"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data,omitempty"`
}

// UserEvent is the payload for user-scoped events.
type UserEvent struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email,omitempty"`
}

// RecordEvent is the payload for record insertions.
type RecordEvent struct {
	UserID   uint   `json:"user_id"`
	RecordID uint   `json:"record_id"`
	Kind     string `json:"kind"`
	Score    *int   `json:"score,omitempty"`
}

// ReportEvent is the payload for report exports.
type ReportEvent struct {
	Format   string `json:"format"`
	Filename string `json:"filename"`
	Rows     int    `json:"rows"`
}
