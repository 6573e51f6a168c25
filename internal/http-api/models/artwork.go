package models

import "time"

// Artwork statuses. The only legal transitions are
// pending -> approved and pending -> rejected.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Artwork struct {
	ID             int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID         string     `json:"user_id" gorm:"type:uuid;not null;index"`
	Title          string     `json:"title" gorm:"not null"`
	Description    string     `json:"description" gorm:"type:text"`
	Medium         string     `json:"medium" gorm:"not null"`
	Category       string     `json:"category" gorm:"not null;index"`
	FileURL        string     `json:"file_url" gorm:"not null"`
	ThumbnailURL   string     `json:"thumbnail_url"`
	Tags           string     `json:"tags"`
	CreationDate   *time.Time `json:"creation_date,omitempty"`
	Status         string     `json:"status" gorm:"default:'pending';not null;index"`
	SubmissionDate time.Time  `json:"submission_date" gorm:"autoCreateTime"`
	ApprovalDate   *time.Time `json:"approval_date,omitempty"`
	// Denormalized counters. LikesCount must always equal the number of
	// Like rows referencing this artwork; ViewsCount counts every fetch.
	LikesCount int64 `json:"likes_count" gorm:"default:0;not null"`
	ViewsCount int64 `json:"views_count" gorm:"default:0;not null"`
	IsFeatured bool  `json:"is_featured" gorm:"default:false;not null"`

	// Associations
	Artist User `json:"artist,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (Artwork) TableName() string {
	return "artworks"
}
