package service

import (
	"errors"

	"artgrid/internal/http-api/models"
	"artgrid/internal/http-api/repository"
)

var ErrUserNotFound = errors.New("user not found")

// ProfileUpdate carries the optional profile fields; empty values are
// left untouched.
type ProfileUpdate struct {
	FullName    string
	YearOfStudy string
}

type UserService interface {
	GetProfile(userID string) (*models.User, error)
	UpdateProfile(userID string, update ProfileUpdate) (*models.User, error)
	Gallery(userID string) (*models.User, []models.Artwork, error)
	DeleteUser(userID string) error
}

type userService struct {
	userRepo    repository.UserRepository
	artworkRepo repository.ArtworkRepository
}

func NewUserService(userRepo repository.UserRepository, artworkRepo repository.ArtworkRepository) UserService {
	return &userService{userRepo: userRepo, artworkRepo: artworkRepo}
}

func (s *userService) GetProfile(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) UpdateProfile(userID string, update ProfileUpdate) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if update.FullName != "" {
		user.FullName = update.FullName
	}
	if update.YearOfStudy != "" {
		user.YearOfStudy = update.YearOfStudy
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Gallery returns a user's public page: their summary plus approved
// artworks, newest first.
func (s *userService) Gallery(userID string) (*models.User, []models.Artwork, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, nil, ErrUserNotFound
	}

	artworks, err := s.artworkRepo.ListApprovedByUser(userID)
	if err != nil {
		return nil, nil, err
	}
	return user, artworks, nil
}

// DeleteUser removes the account and all dependent rows in one
// transaction (likes, comments, artworks and their moderation records).
func (s *userService) DeleteUser(userID string) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return ErrUserNotFound
	}
	return s.userRepo.DeleteCascade(userID)
}
