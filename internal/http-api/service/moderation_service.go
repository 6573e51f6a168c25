package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"artgrid/internal/http-api/models"
	"artgrid/internal/http-api/repository"
	"artgrid/internal/mailer"
)

var (
	ErrNotPending  = errors.New("artwork is not pending approval")
	ErrNotApproved = errors.New("only approved artworks can be featured")
)

type ModerationService interface {
	Queue(page, pageSize int) ([]models.Artwork, int64, error)
	Approve(moderatorID string, artworkID int64) error
	Reject(moderatorID string, artworkID int64, feedback string) error
	ToggleFeature(artworkID int64) (featured bool, err error)
}

type moderationService struct {
	artworkRepo    repository.ArtworkRepository
	moderationRepo repository.ModerationRepository
	mail           mailer.Mailer
	log            *slog.Logger
}

func NewModerationService(
	artworkRepo repository.ArtworkRepository,
	moderationRepo repository.ModerationRepository,
	mail mailer.Mailer,
	log *slog.Logger,
) ModerationService {
	return &moderationService{
		artworkRepo:    artworkRepo,
		moderationRepo: moderationRepo,
		mail:           mail,
		log:            log,
	}
}

func (s *moderationService) Queue(page, pageSize int) ([]models.Artwork, int64, error) {
	return s.artworkRepo.ListPending(page, pageSize)
}

// Approve moves a pending artwork to approved, stamps the approval date
// and appends the audit record. Approved and rejected are terminal; a
// second transition of either kind fails with ErrNotPending.
func (s *moderationService) Approve(moderatorID string, artworkID int64) error {
	artwork, err := s.artworkRepo.FindByID(artworkID)
	if err != nil {
		return ErrArtworkNotFound
	}
	if artwork.Status != models.StatusPending {
		return ErrNotPending
	}

	now := time.Now().UTC()
	if err := s.artworkRepo.SetStatus(artworkID, models.StatusApproved, &now); err != nil {
		return err
	}

	record := &models.Moderation{
		ArtworkID:   artworkID,
		ModeratorID: moderatorID,
		Action:      models.ActionApproved,
	}
	if err := s.moderationRepo.Create(record); err != nil {
		return err
	}

	mailer.SendAsync(s.mail, s.log, artwork.Artist.Email, "Artwork Approved - ARTGRID",
		fmt.Sprintf("Hello %s,\n\nGreat news! Your artwork %q has been approved and is now live on ARTGRID.\n\nThank you for contributing to the UoPeople art community!\n\nBest regards,\nARTGRID Team",
			artwork.Artist.FullName, artwork.Title))

	return nil
}

// Reject moves a pending artwork to rejected and records the optional
// moderator feedback on the audit entry.
func (s *moderationService) Reject(moderatorID string, artworkID int64, feedback string) error {
	artwork, err := s.artworkRepo.FindByID(artworkID)
	if err != nil {
		return ErrArtworkNotFound
	}
	if artwork.Status != models.StatusPending {
		return ErrNotPending
	}

	if err := s.artworkRepo.SetStatus(artworkID, models.StatusRejected, nil); err != nil {
		return err
	}

	record := &models.Moderation{
		ArtworkID:   artworkID,
		ModeratorID: moderatorID,
		Action:      models.ActionRejected,
		Feedback:    feedback,
	}
	if err := s.moderationRepo.Create(record); err != nil {
		return err
	}

	mailer.SendAsync(s.mail, s.log, artwork.Artist.Email, "Artwork Submission Update - ARTGRID",
		fmt.Sprintf("Hello %s,\n\nThank you for your submission %q. After review, we need you to make some adjustments before it can be approved.\n\nFeedback: %s\n\nPlease feel free to resubmit your artwork after making the necessary changes.\n\nBest regards,\nARTGRID Team",
			artwork.Artist.FullName, artwork.Title, feedback))

	return nil
}

// ToggleFeature flips is_featured. Legal only on approved artworks; it is
// the one mutation allowed after the moderation decision.
func (s *moderationService) ToggleFeature(artworkID int64) (bool, error) {
	artwork, err := s.artworkRepo.FindByID(artworkID)
	if err != nil {
		return false, ErrArtworkNotFound
	}
	if artwork.Status != models.StatusApproved {
		return false, ErrNotApproved
	}

	featured := !artwork.IsFeatured
	if err := s.artworkRepo.SetFeatured(artworkID, featured); err != nil {
		return false, err
	}
	return featured, nil
}
