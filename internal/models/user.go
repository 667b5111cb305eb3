package models

import (
	"time"
)

// User is a registered student. There is no role column: the administrator
// is a session flag granted by fixed credentials, never a user row.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"not null;size:100"`
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string `json:"-" gorm:"not null;size:255"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
