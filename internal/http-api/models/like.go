package models

import "time"

// Like records a single user liking a single artwork. The composite
// unique index is the source of truth for the at-most-one-like-per-user
// invariant; application-level existence checks are only an optimization.
type Like struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_artwork"`
	ArtworkID int64     `json:"artwork_id" gorm:"not null;uniqueIndex:idx_likes_user_artwork"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Artwork Artwork `json:"artwork,omitempty" gorm:"foreignKey:ArtworkID;constraint:OnDelete:CASCADE;"`
}

func (Like) TableName() string {
	return "likes"
}
