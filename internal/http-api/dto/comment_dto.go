package dto

import (
	"time"

	"artgrid/internal/http-api/models"
)

// CreateCommentRequest: payload for adding a comment to an artwork
type CreateCommentRequest struct {
	ArtworkID int64  `json:"artwork_id" binding:"required"`
	Content   string `json:"content" binding:"required,min=1,max=5000"`
}

// CommentAuthor: the commenter shape on the public read path
type CommentAuthor struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

// CommentResponse: a single comment
type CommentResponse struct {
	ID        int64         `json:"id"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"created_at"`
	User      CommentAuthor `json:"user"`
}

// CommentListResponse: all visible comments for one artwork
type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
}

func FromModelToCommentResponse(comment *models.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		User: CommentAuthor{
			ID:       comment.User.ID,
			FullName: comment.User.FullName,
		},
	}
}
