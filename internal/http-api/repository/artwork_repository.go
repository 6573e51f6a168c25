package repository

import (
	"time"

	"artgrid/internal/http-api/models"

	"gorm.io/gorm"
)

// ArtworkFilter narrows the public listing.
type ArtworkFilter struct {
	Category     string
	Medium       string
	FeaturedOnly bool
}

type ArtworkRepository interface {
	Create(artwork *models.Artwork) error
	FindByID(id int64) (*models.Artwork, error)
	ListApproved(filter ArtworkFilter, page, pageSize int) ([]models.Artwork, int64, error)
	ListPending(page, pageSize int) ([]models.Artwork, int64, error)
	ListApprovedByUser(userID string) ([]models.Artwork, error)
	IncrementViews(id int64) error
	SetStatus(id int64, status string, approvalDate *time.Time) error
	SetFeatured(id int64, featured bool) error
}

type artworkRepository struct {
	db *gorm.DB
}

func NewArtworkRepository(db *gorm.DB) ArtworkRepository {
	return &artworkRepository{db: db}
}

func (r *artworkRepository) Create(artwork *models.Artwork) error {
	return r.db.Create(artwork).Error
}

func (r *artworkRepository) FindByID(id int64) (*models.Artwork, error) {
	var artwork models.Artwork
	err := r.db.Where("id = ?", id).
		Preload("Artist").
		First(&artwork).Error
	if err != nil {
		return nil, err
	}
	return &artwork, nil
}

// ListApproved retrieves approved artworks, newest submissions first.
func (r *artworkRepository) ListApproved(filter ArtworkFilter, page, pageSize int) ([]models.Artwork, int64, error) {
	query := r.db.Model(&models.Artwork{}).Where("status = ?", models.StatusApproved)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Medium != "" {
		query = query.Where("medium = ?", filter.Medium)
	}
	if filter.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var artworks []models.Artwork
	offset := (page - 1) * pageSize
	err := query.
		Preload("Artist").
		Order("submission_date DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&artworks).Error
	if err != nil {
		return nil, 0, err
	}

	return artworks, total, nil
}

// ListPending retrieves the moderation queue, oldest submissions first.
func (r *artworkRepository) ListPending(page, pageSize int) ([]models.Artwork, int64, error) {
	query := r.db.Model(&models.Artwork{}).Where("status = ?", models.StatusPending)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var artworks []models.Artwork
	offset := (page - 1) * pageSize
	err := query.
		Preload("Artist").
		Order("submission_date ASC").
		Limit(pageSize).
		Offset(offset).
		Find(&artworks).Error
	if err != nil {
		return nil, 0, err
	}

	return artworks, total, nil
}

func (r *artworkRepository) ListApprovedByUser(userID string) ([]models.Artwork, error) {
	var artworks []models.Artwork
	err := r.db.Where("user_id = ? AND status = ?", userID, models.StatusApproved).
		Order("submission_date DESC").
		Find(&artworks).Error
	if err != nil {
		return nil, err
	}
	return artworks, nil
}

// IncrementViews bumps views_count on every single-artwork fetch.
// Repeat views are not deduplicated.
func (r *artworkRepository) IncrementViews(id int64) error {
	return r.db.Model(&models.Artwork{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}

func (r *artworkRepository) SetStatus(id int64, status string, approvalDate *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if approvalDate != nil {
		updates["approval_date"] = *approvalDate
	}
	return r.db.Model(&models.Artwork{}).Where("id = ?", id).Updates(updates).Error
}

func (r *artworkRepository) SetFeatured(id int64, featured bool) error {
	return r.db.Model(&models.Artwork{}).Where("id = ?", id).
		UpdateColumn("is_featured", featured).Error
}
