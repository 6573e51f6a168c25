package dto

import (
	"time"

	"artgrid/internal/http-api/models"
)

// ArtistSummary: the owner shape embedded in public artwork responses
type ArtistSummary struct {
	ID              string `json:"id"`
	FullName        string `json:"full_name"`
	YearOfStudy     string `json:"year_of_study"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
}

// ArtworkResponse: the public artwork shape
type ArtworkResponse struct {
	ID             int64         `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Medium         string        `json:"medium"`
	Category       string        `json:"category"`
	FileURL        string        `json:"file_url"`
	ThumbnailURL   string        `json:"thumbnail_url"`
	Tags           string        `json:"tags"`
	CreationDate   *time.Time    `json:"creation_date,omitempty"`
	SubmissionDate time.Time     `json:"submission_date"`
	LikesCount     int64         `json:"likes_count"`
	ViewsCount     int64         `json:"views_count"`
	IsFeatured     bool          `json:"is_featured"`
	Artist         ArtistSummary `json:"artist"`
}

// QueueArtistSummary: the richer owner shape on the moderation queue
type QueueArtistSummary struct {
	ID                 string `json:"id"`
	FullName           string `json:"full_name"`
	Email              string `json:"email"`
	YearOfStudy        string `json:"year_of_study"`
	VerificationStatus string `json:"verification_status"`
}

// QueueItemResponse: one pending artwork awaiting moderation
type QueueItemResponse struct {
	ID             int64              `json:"id"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	Medium         string             `json:"medium"`
	Category       string             `json:"category"`
	FileURL        string             `json:"file_url"`
	SubmissionDate time.Time          `json:"submission_date"`
	Artist         QueueArtistSummary `json:"artist"`
}

// Pagination: the envelope shared by paginated listings
type Pagination struct {
	Page    int   `json:"page"`
	Pages   int   `json:"pages"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// PaginatedArtworksResponse: public listing payload
type PaginatedArtworksResponse struct {
	Artworks   []ArtworkResponse `json:"artworks"`
	Pagination Pagination        `json:"pagination"`
}

// QueueResponse: moderation queue payload
type QueueResponse struct {
	Artworks   []QueueItemResponse `json:"artworks"`
	Pagination Pagination          `json:"pagination"`
}

// UploadResponse: returned after a successful submission
type UploadResponse struct {
	Message   string `json:"message"`
	ArtworkID int64  `json:"artwork_id"`
	Status    string `json:"status"`
}

// LikeResponse: toggle outcome plus the authoritative counter
type LikeResponse struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

// CategoriesResponse: static vocabularies for the upload form
type CategoriesResponse struct {
	Categories []string `json:"categories"`
	Mediums    []string `json:"mediums"`
}

// GalleryResponse: a user's public page
type GalleryResponse struct {
	User     ArtistSummary     `json:"user"`
	Artworks []ArtworkResponse `json:"artworks"`
}

func FromModelToArtistSummary(user *models.User) ArtistSummary {
	return ArtistSummary{
		ID:              user.ID,
		FullName:        user.FullName,
		YearOfStudy:     user.YearOfStudy,
		ProfileImageURL: user.ProfileImageURL,
	}
}

func FromModelToArtworkResponse(artwork *models.Artwork) ArtworkResponse {
	return ArtworkResponse{
		ID:             artwork.ID,
		Title:          artwork.Title,
		Description:    artwork.Description,
		Medium:         artwork.Medium,
		Category:       artwork.Category,
		FileURL:        artwork.FileURL,
		ThumbnailURL:   artwork.ThumbnailURL,
		Tags:           artwork.Tags,
		CreationDate:   artwork.CreationDate,
		SubmissionDate: artwork.SubmissionDate,
		LikesCount:     artwork.LikesCount,
		ViewsCount:     artwork.ViewsCount,
		IsFeatured:     artwork.IsFeatured,
		Artist:         FromModelToArtistSummary(&artwork.Artist),
	}
}

func FromModelToQueueItemResponse(artwork *models.Artwork) QueueItemResponse {
	return QueueItemResponse{
		ID:             artwork.ID,
		Title:          artwork.Title,
		Description:    artwork.Description,
		Medium:         artwork.Medium,
		Category:       artwork.Category,
		FileURL:        artwork.FileURL,
		SubmissionDate: artwork.SubmissionDate,
		Artist: QueueArtistSummary{
			ID:                 artwork.Artist.ID,
			FullName:           artwork.Artist.FullName,
			Email:              artwork.Artist.Email,
			YearOfStudy:        artwork.Artist.YearOfStudy,
			VerificationStatus: artwork.Artist.VerificationStatus,
		},
	}
}

// NewPagination derives the envelope from a total row count.
func NewPagination(total int64, page, perPage int) Pagination {
	pages := int(total) / perPage
	if int(total)%perPage != 0 {
		pages++
	}
	return Pagination{
		Page:    page,
		Pages:   pages,
		PerPage: perPage,
		Total:   total,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}
