package repository

import (
	"artgrid/internal/http-api/models"

	"gorm.io/gorm"
)

type LikeRepository interface {
	Toggle(userID string, artworkID int64) (liked bool, likesCount int64, err error)
	CountByArtwork(artworkID int64) (int64, error)
	Exists(userID string, artworkID int64) (bool, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Toggle flips the like state for (user, artwork) and keeps likes_count
// consistent, all inside one transaction. The existence check is only an
// optimization; the unique index on (user_id, artwork_id) is what
// actually prevents double likes under concurrent toggles.
func (r *likeRepository) Toggle(userID string, artworkID int64) (bool, int64, error) {
	var liked bool
	var likesCount int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND artwork_id = ?", userID, artworkID).
			Delete(&models.Like{})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected > 0 {
			// Existing like removed; decrement with a floor at zero.
			liked = false
			if err := tx.Model(&models.Artwork{}).Where("id = ?", artworkID).
				UpdateColumn("likes_count", gorm.Expr("MAX(likes_count - 1, 0)")).Error; err != nil {
				return err
			}
		} else {
			like := &models.Like{UserID: userID, ArtworkID: artworkID}
			if err := tx.Create(like).Error; err != nil {
				// A concurrent toggle from the same user trips the unique
				// index here and rolls the whole transaction back.
				return err
			}
			liked = true
			if err := tx.Model(&models.Artwork{}).Where("id = ?", artworkID).
				UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.Artwork{}).Where("id = ?", artworkID).
			Select("likes_count").Scan(&likesCount).Error
	})
	if err != nil {
		return false, 0, err
	}

	return liked, likesCount, nil
}

func (r *likeRepository) CountByArtwork(artworkID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("artwork_id = ?", artworkID).Count(&count).Error
	return count, err
}

func (r *likeRepository) Exists(userID string, artworkID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("user_id = ? AND artwork_id = ?", userID, artworkID).
		Count(&count).Error
	return count > 0, err
}
