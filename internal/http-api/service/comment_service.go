package service

import (
	"strings"

	"artgrid/internal/http-api/models"
	"artgrid/internal/http-api/repository"
)

type CommentService interface {
	Create(userID string, artworkID int64, content string) (*models.Comment, error)
	ListByArtwork(artworkID int64) ([]models.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	artworkRepo repository.ArtworkRepository
	userRepo    repository.UserRepository
	// blocklist is a case-insensitive substring filter. Placeholder
	// policy, injected from config rather than hardcoded.
	blocklist []string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	artworkRepo repository.ArtworkRepository,
	userRepo repository.UserRepository,
	blocklist []string,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		artworkRepo: artworkRepo,
		userRepo:    userRepo,
		blocklist:   blocklist,
	}
}

// Create appends a comment to an approved artwork. Comments matching the
// blocklist are stored flagged, not rejected; they simply never show up
// on the public listing.
func (s *commentService) Create(userID string, artworkID int64, content string) (*models.Comment, error) {
	artwork, err := s.artworkRepo.FindByID(artworkID)
	if err != nil || artwork.Status != models.StatusApproved {
		return nil, ErrArtworkNotFound
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	comment := &models.Comment{
		UserID:    userID,
		ArtworkID: artworkID,
		Content:   content,
		IsFlagged: s.isFlagged(content),
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	comment.User = *user

	return comment, nil
}

func (s *commentService) ListByArtwork(artworkID int64) ([]models.Comment, error) {
	artwork, err := s.artworkRepo.FindByID(artworkID)
	if err != nil || artwork.Status != models.StatusApproved {
		return nil, ErrArtworkNotFound
	}

	return s.commentRepo.ListVisibleByArtwork(artworkID)
}

func (s *commentService) isFlagged(content string) bool {
	lowered := strings.ToLower(content)
	for _, word := range s.blocklist {
		if word == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(word)) {
			return true
		}
	}
	return false
}
