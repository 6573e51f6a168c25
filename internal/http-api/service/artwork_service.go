package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"artgrid/internal/http-api/models"
	"artgrid/internal/http-api/repository"
	"artgrid/internal/mailer"
	"artgrid/internal/storage"
)

var (
	ErrArtworkNotFound    = errors.New("artwork not found")
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrUploadFailed       = errors.New("file upload failed")
)

// allowedExtensions is the upload allowlist.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".mp4":  true,
}

// Static vocabularies served by the categories endpoint.
var (
	Categories = []string{"Digital Art", "Painting", "Drawing", "Photography", "Sculpture", "Printmaking", "Mixed Media", "Other"}
	Mediums    = []string{"Digital Art", "Oil Paint", "Acrylic Paint", "Watercolor", "Pencil", "Charcoal", "Photography", "Clay", "Mixed Media", "Other"}
)

// UploadInput carries the multipart submission.
type UploadInput struct {
	Title        string
	Description  string
	Medium       string
	Category     string
	Tags         string
	CreationDate string // YYYY-MM-DD, optional
	File         io.Reader
	Filename     string
	ContentType  string
}

type ArtworkService interface {
	Upload(ctx context.Context, userID string, input UploadInput) (*models.Artwork, error)
	List(filter repository.ArtworkFilter, page, pageSize int) ([]models.Artwork, int64, error)
	Get(id int64) (*models.Artwork, error)
	ToggleLike(userID string, artworkID int64) (liked bool, likesCount int64, err error)
}

type artworkService struct {
	artworkRepo repository.ArtworkRepository
	likeRepo    repository.LikeRepository
	userRepo    repository.UserRepository
	uploader    storage.Uploader
	mail        mailer.Mailer
	log         *slog.Logger
}

func NewArtworkService(
	artworkRepo repository.ArtworkRepository,
	likeRepo repository.LikeRepository,
	userRepo repository.UserRepository,
	uploader storage.Uploader,
	mail mailer.Mailer,
	log *slog.Logger,
) ArtworkService {
	return &artworkService{
		artworkRepo: artworkRepo,
		likeRepo:    likeRepo,
		userRepo:    userRepo,
		uploader:    uploader,
		mail:        mail,
		log:         log,
	}
}

// Upload stores the asset with the storage provider and records the
// submission. Artworks by verified owners go live immediately; everyone
// else lands in the moderation queue.
func (s *artworkService) Upload(ctx context.Context, userID string, input UploadInput) (*models.Artwork, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	ext := strings.ToLower(filepath.Ext(input.Filename))
	if !allowedExtensions[ext] {
		return nil, ErrFileTypeNotAllowed
	}

	fileURL, err := s.uploader.Upload(ctx, input.File, input.Filename, input.ContentType)
	if err != nil {
		s.log.Error("artwork upload failed", "user_id", userID, "filename", input.Filename, "error", err)
		return nil, ErrUploadFailed
	}

	var creationDate *time.Time
	if input.CreationDate != "" {
		if parsed, err := time.Parse("2006-01-02", input.CreationDate); err == nil {
			creationDate = &parsed
		}
		// An unparseable creation date is dropped, not rejected.
	}

	status := models.StatusPending
	if user.VerificationStatus == models.VerificationVerified {
		status = models.StatusApproved
	}

	artwork := &models.Artwork{
		UserID:       userID,
		Title:        input.Title,
		Description:  input.Description,
		Medium:       input.Medium,
		Category:     input.Category,
		FileURL:      fileURL,
		ThumbnailURL: fileURL,
		Tags:         input.Tags,
		CreationDate: creationDate,
		Status:       status,
	}

	if err := s.artworkRepo.Create(artwork); err != nil {
		return nil, err
	}

	mailer.SendAsync(s.mail, s.log, user.Email, "Artwork Submitted - ARTGRID",
		fmt.Sprintf("Hello %s,\n\nYour artwork %q has been submitted successfully.\n\nStatus: %s\n\nThank you for contributing to the UoPeople art community!\n\nBest regards,\nARTGRID Team",
			user.FullName, artwork.Title, artwork.Status))

	return artwork, nil
}

func (s *artworkService) List(filter repository.ArtworkFilter, page, pageSize int) ([]models.Artwork, int64, error) {
	return s.artworkRepo.ListApproved(filter, page, pageSize)
}

// Get returns a single approved artwork and counts the view. Every fetch
// counts; repeat views from the same client are not deduplicated.
func (s *artworkService) Get(id int64) (*models.Artwork, error) {
	artwork, err := s.artworkRepo.FindByID(id)
	if err != nil || artwork.Status != models.StatusApproved {
		return nil, ErrArtworkNotFound
	}

	if err := s.artworkRepo.IncrementViews(id); err != nil {
		return nil, err
	}
	artwork.ViewsCount++

	return artwork, nil
}

// ToggleLike flips the caller's like on an approved artwork.
func (s *artworkService) ToggleLike(userID string, artworkID int64) (bool, int64, error) {
	artwork, err := s.artworkRepo.FindByID(artworkID)
	if err != nil || artwork.Status != models.StatusApproved {
		return false, 0, ErrArtworkNotFound
	}

	return s.likeRepo.Toggle(userID, artworkID)
}
