package repository

import (
	"artgrid/internal/http-api/models"

	"gorm.io/gorm"
)

// Overview holds the admin dashboard headline counts.
type Overview struct {
	TotalUsers       int64 `json:"total_users"`
	TotalArtworks    int64 `json:"total_artworks"`
	PendingArtworks  int64 `json:"pending_artworks"`
	ApprovedArtworks int64 `json:"approved_artworks"`
	RejectedArtworks int64 `json:"rejected_artworks"`
	FeaturedArtworks int64 `json:"featured_artworks"`
}

// YearStat counts approved artworks grouped by the artist's year of study.
type YearStat struct {
	Year  string `json:"year" gorm:"column:year_of_study"`
	Count int64  `json:"count"`
}

// CategoryStat counts approved artworks per category.
type CategoryStat struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// TopArtwork is a leaderboard row ordered by likes.
type TopArtwork struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	LikesCount int64  `json:"likes_count"`
	ViewsCount int64  `json:"views_count"`
	ArtistName string `json:"artist_name" gorm:"column:full_name"`
}

type StatsRepository interface {
	Overview() (*Overview, error)
	YearStats() ([]YearStat, error)
	CategoryStats() ([]CategoryStat, error)
	TopArtworks(limit int) ([]TopArtwork, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Overview() (*Overview, error) {
	var o Overview
	if err := r.db.Model(&models.User{}).Count(&o.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Artwork{}).Count(&o.TotalArtworks).Error; err != nil {
		return nil, err
	}
	statusCounts := map[string]*int64{
		models.StatusPending:  &o.PendingArtworks,
		models.StatusApproved: &o.ApprovedArtworks,
		models.StatusRejected: &o.RejectedArtworks,
	}
	for status, target := range statusCounts {
		if err := r.db.Model(&models.Artwork{}).Where("status = ?", status).Count(target).Error; err != nil {
			return nil, err
		}
	}
	if err := r.db.Model(&models.Artwork{}).Where("is_featured = ?", true).Count(&o.FeaturedArtworks).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *statsRepository) YearStats() ([]YearStat, error) {
	var stats []YearStat
	err := r.db.Model(&models.Artwork{}).
		Select("users.year_of_study, COUNT(artworks.id) AS count").
		Joins("JOIN users ON users.id = artworks.user_id").
		Where("artworks.status = ?", models.StatusApproved).
		Group("users.year_of_study").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *statsRepository) CategoryStats() ([]CategoryStat, error) {
	var stats []CategoryStat
	err := r.db.Model(&models.Artwork{}).
		Select("category, COUNT(id) AS count").
		Where("status = ?", models.StatusApproved).
		Group("category").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *statsRepository) TopArtworks(limit int) ([]TopArtwork, error) {
	var top []TopArtwork
	err := r.db.Model(&models.Artwork{}).
		Select("artworks.id, artworks.title, artworks.likes_count, artworks.views_count, users.full_name").
		Joins("JOIN users ON users.id = artworks.user_id").
		Where("artworks.status = ?", models.StatusApproved).
		Order("artworks.likes_count DESC").
		Limit(limit).
		Scan(&top).Error
	if err != nil {
		return nil, err
	}
	return top, nil
}
