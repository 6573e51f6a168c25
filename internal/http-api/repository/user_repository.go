package repository

import (
	"artgrid/internal/http-api/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByStudentID(studentID string) (*models.User, error)
	Update(user *models.User) error
	DeleteCascade(id string) error
}

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository in a GORM implementation
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	// return nil on miss rather than a zero-value struct
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByStudentID(studentID string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("student_id = ?", studentID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// DeleteCascade removes a user and every dependent row in one
// transaction: first compensate likes_count on artworks the user liked,
// then delete likes, comments and moderation records touching the user's
// artworks, the artworks themselves, and finally the user row.
func (r *userRepository) DeleteCascade(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Artworks liked by this user lose one like each.
		var likedArtworkIDs []int64
		if err := tx.Model(&models.Like{}).Where("user_id = ?", id).
			Pluck("artwork_id", &likedArtworkIDs).Error; err != nil {
			return err
		}
		if len(likedArtworkIDs) > 0 {
			if err := tx.Model(&models.Artwork{}).
				Where("id IN ?", likedArtworkIDs).
				UpdateColumn("likes_count", gorm.Expr("MAX(likes_count - 1, 0)")).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		// Dependents of the user's own artworks.
		var artworkIDs []int64
		if err := tx.Model(&models.Artwork{}).Where("user_id = ?", id).
			Pluck("id", &artworkIDs).Error; err != nil {
			return err
		}
		if len(artworkIDs) > 0 {
			if err := tx.Where("artwork_id IN ?", artworkIDs).Delete(&models.Like{}).Error; err != nil {
				return err
			}
			if err := tx.Where("artwork_id IN ?", artworkIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("artwork_id IN ?", artworkIDs).Delete(&models.Moderation{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", artworkIDs).Delete(&models.Artwork{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.User{}, "id = ?", id).Error
	})
}
