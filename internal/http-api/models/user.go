package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles
const (
	RoleStudent   = "student"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// Verification statuses
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
)

type User struct {
	ID                 string    `gorm:"primaryKey;type:uuid" json:"id"`
	FullName           string    `gorm:"not null" json:"full_name"`
	Email              string    `gorm:"uniqueIndex;not null" json:"email"`
	Password           string    `gorm:"column:password_hash;not null" json:"-"` // Not shown in JSON
	DOBHash            string    `gorm:"column:dob_hash;not null" json:"-"`      // sha256 of date of birth, never stored raw
	StudentID          string    `gorm:"uniqueIndex;not null" json:"student_id"`
	YearOfStudy        string    `gorm:"not null" json:"year_of_study"`
	ProfileImageURL    string    `json:"profile_image_url,omitempty"`
	VerificationStatus string    `gorm:"default:'pending';not null" json:"verification_status"`
	Role               string    `gorm:"default:'student';not null" json:"role"`
	CreatedAt          time.Time `json:"created_at"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

// IsModerator reports whether the user may act on the moderation queue.
func (user *User) IsModerator() bool {
	return user.Role == RoleModerator || user.Role == RoleAdmin
}

func (User) TableName() string {
	return "users"
}
