package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"artgrid/internal/http-api/dto"
	"artgrid/internal/http-api/service"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// RegisterRoutes registers comment routes. Reading is public; writing
// requires the auth middleware on the authed group.
func (h *CommentHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("/:artwork_id", h.ListByArtwork)
	authed.POST("", h.Create)
}

// Create adds a comment to an approved artwork
// POST /api/comments
func (h *CommentHandler) Create(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Artwork ID and content are required"})
		return
	}

	comment, err := h.commentService.Create(userID.(string), req.ArtworkID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArtworkNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "comment creation failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.FromModelToCommentResponse(comment))
}

// ListByArtwork returns visible comments for an artwork, newest first.
// Flagged comments are excluded, not deleted.
// GET /api/comments/:artwork_id
func (h *CommentHandler) ListByArtwork(c *gin.Context) {
	artworkID, err := strconv.ParseInt(c.Param("artwork_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid artwork ID"})
		return
	}

	comments, err := h.commentService.ListByArtwork(artworkID)
	if err != nil {
		if errors.Is(err, service.ErrArtworkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list comments"})
		return
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, dto.FromModelToCommentResponse(&comments[i]))
	}

	c.JSON(http.StatusOK, dto.CommentListResponse{Comments: responses})
}
