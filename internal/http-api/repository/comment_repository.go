package repository

import (
	"artgrid/internal/http-api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	// ListVisibleByArtwork returns unflagged comments for an artwork,
	// newest first. Flagged comments stay in the table but never appear
	// on the public read path.
	ListVisibleByArtwork(artworkID int64) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) ListVisibleByArtwork(artworkID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("artwork_id = ? AND is_flagged = ?", artworkID, false).
		Preload("User").
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
