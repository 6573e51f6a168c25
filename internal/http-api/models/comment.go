package models

import "time"

type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index"`
	ArtworkID int64     `json:"artwork_id" gorm:"not null;index"`
	Content   string    `json:"content" gorm:"not null;type:text"`
	IsFlagged bool      `json:"is_flagged" gorm:"default:false;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Artwork Artwork `json:"artwork,omitempty" gorm:"foreignKey:ArtworkID;constraint:OnDelete:CASCADE;"`
}

func (Comment) TableName() string {
	return "comments"
}
