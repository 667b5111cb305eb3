package models

import (
	"time"

	"gorm.io/datatypes"
)

// History tables are append-only: records are never updated or deleted in
// place, and current state is derived by aggregation at read time.

// AptitudeRecord is one logged mock-test score.
type AptitudeRecord struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	UserID   uint      `json:"user_id" gorm:"index;not null"`
	Score    int       `json:"score" gorm:"not null"`
	TestDate time.Time `json:"test_date" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
}

func (AptitudeRecord) TableName() string {
	return "aptitude_records"
}

// CertificationRecord is one earned certification.
type CertificationRecord struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"index;not null"`
	Title      string    `json:"title" gorm:"not null;size:200"`
	EarnedDate time.Time `json:"earned_date" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
}

func (CertificationRecord) TableName() string {
	return "certification_records"
}

// ResumeRecord is one scored resume upload. MatchedSkills keeps the skills
// found in the document, in reference-list order.
type ResumeRecord struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	UserID        uint           `json:"user_id" gorm:"index;not null"`
	Filename      string         `json:"filename" gorm:"not null;size:255"`
	Score         int            `json:"score" gorm:"not null"`
	MatchedSkills datatypes.JSON `json:"matched_skills"`

	CreatedAt time.Time `json:"created_at"`
}

func (ResumeRecord) TableName() string {
	return "resume_records"
}
