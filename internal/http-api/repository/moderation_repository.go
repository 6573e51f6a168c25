package repository

import (
	"artgrid/internal/http-api/models"

	"gorm.io/gorm"
)

type ModerationRepository interface {
	Create(record *models.Moderation) error
	ListByArtwork(artworkID int64) ([]models.Moderation, error)
}

type moderationRepository struct {
	db *gorm.DB
}

func NewModerationRepository(db *gorm.DB) ModerationRepository {
	return &moderationRepository{db: db}
}

func (r *moderationRepository) Create(record *models.Moderation) error {
	return r.db.Create(record).Error
}

func (r *moderationRepository) ListByArtwork(artworkID int64) ([]models.Moderation, error) {
	var records []models.Moderation
	err := r.db.Where("artwork_id = ?", artworkID).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
