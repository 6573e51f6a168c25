package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"artgrid/internal/http-api/dto"
	"artgrid/internal/http-api/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers the public user routes.
func (h *UserHandler) RegisterRoutes(public *gin.RouterGroup) {
	public.GET("/:id/gallery", h.Gallery)
}

// Gallery returns a user's public page: summary plus approved artworks
// GET /api/users/:id/gallery
func (h *UserHandler) Gallery(c *gin.Context) {
	userID := c.Param("id")

	user, artworks, err := h.userService.Gallery(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load gallery"})
		return
	}

	responses := make([]dto.ArtworkResponse, 0, len(artworks))
	for i := range artworks {
		// The owner association is implied by the route; reuse the same
		// summary for every row.
		resp := dto.FromModelToArtworkResponse(&artworks[i])
		resp.Artist = dto.FromModelToArtistSummary(user)
		responses = append(responses, resp)
	}

	c.JSON(http.StatusOK, dto.GalleryResponse{
		User:     dto.FromModelToArtistSummary(user),
		Artworks: responses,
	})
}
