package dto

import (
	"time"

	"artgrid/internal/http-api/models"
)

// Data Transfer Objects for authentication requests and responses

// RegisterRequest: payload for user registration
type RegisterRequest struct {
	FullName    string `json:"full_name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DOB         string `json:"dob" binding:"required"`
	StudentID   string `json:"student_id" binding:"required,max=50"`
	YearOfStudy string `json:"year_of_study" binding:"required,max=20"`
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserSummary: the user shape embedded in auth responses
type UserSummary struct {
	ID                 string `json:"id"`
	FullName           string `json:"full_name"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	VerificationStatus string `json:"verification_status"`
}

// LoginResponse: response payload after successful authentication
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	User        UserSummary `json:"user"`
}

// ProfileResponse: the authenticated user's own record
type ProfileResponse struct {
	ID                 string    `json:"id"`
	FullName           string    `json:"full_name"`
	Email              string    `json:"email"`
	StudentID          string    `json:"student_id"`
	YearOfStudy        string    `json:"year_of_study"`
	ProfileImageURL    string    `json:"profile_image_url,omitempty"`
	VerificationStatus string    `json:"verification_status"`
	Role               string    `json:"role"`
	CreatedAt          time.Time `json:"created_at"`
}

// UpdateProfileRequest: partial profile update; empty fields are ignored
type UpdateProfileRequest struct {
	FullName    string `json:"full_name" binding:"omitempty,max=100"`
	YearOfStudy string `json:"year_of_study" binding:"omitempty,max=20"`
}

func FromModelToUserSummary(user *models.User) UserSummary {
	return UserSummary{
		ID:                 user.ID,
		FullName:           user.FullName,
		Email:              user.Email,
		Role:               user.Role,
		VerificationStatus: user.VerificationStatus,
	}
}

func FromModelToProfileResponse(user *models.User) *ProfileResponse {
	return &ProfileResponse{
		ID:                 user.ID,
		FullName:           user.FullName,
		Email:              user.Email,
		StudentID:          user.StudentID,
		YearOfStudy:        user.YearOfStudy,
		ProfileImageURL:    user.ProfileImageURL,
		VerificationStatus: user.VerificationStatus,
		Role:               user.Role,
		CreatedAt:          user.CreatedAt,
	}
}
