package models

import "time"

// Moderation actions
const (
	ActionApproved = "approved"
	ActionRejected = "rejected"
)

// Moderation is an append-only audit record of an approve/reject
// decision. Rows are only ever created as a side effect of a status
// transition, never updated or deleted individually.
type Moderation struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ArtworkID   int64     `json:"artwork_id" gorm:"not null;index"`
	ModeratorID string    `json:"moderator_id" gorm:"type:uuid;not null;index"`
	Action      string    `json:"action" gorm:"not null"`
	Feedback    string    `json:"feedback,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Artwork   Artwork `json:"artwork,omitempty" gorm:"foreignKey:ArtworkID;constraint:OnDelete:CASCADE;"`
	Moderator User    `json:"moderator,omitempty" gorm:"foreignKey:ModeratorID"`
}

func (Moderation) TableName() string {
	return "moderations"
}
