package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"artgrid/internal/http-api/dto"
	"artgrid/internal/http-api/service"
)

type AdminHandler struct {
	moderationService service.ModerationService
	statsService      service.StatsService
	userService       service.UserService
}

func NewAdminHandler(
	moderationService service.ModerationService,
	statsService service.StatsService,
	userService service.UserService,
) *AdminHandler {
	return &AdminHandler{
		moderationService: moderationService,
		statsService:      statsService,
		userService:       userService,
	}
}

// RegisterRoutes registers moderation and admin routes. The moderation
// group carries the moderator gate; the admin group carries the admin
// gate on top of it.
func (h *AdminHandler) RegisterRoutes(moderation, admin *gin.RouterGroup) {
	moderation.GET("/queue", h.Queue)
	moderation.PUT("/approve/:id", h.Approve)
	moderation.PUT("/reject/:id", h.Reject)
	moderation.POST("/feature/:id", h.Feature)
	moderation.GET("/stats", h.Stats)
	admin.DELETE("/users/:id", h.DeleteUser)
}

// Queue lists pending artworks, oldest first
// GET /api/admin/queue?page=1&per_page=10
func (h *AdminHandler) Queue(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	artworks, total, err := h.moderationService.Queue(page, perPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list moderation queue"})
		return
	}

	items := make([]dto.QueueItemResponse, 0, len(artworks))
	for i := range artworks {
		items = append(items, dto.FromModelToQueueItemResponse(&artworks[i]))
	}

	c.JSON(http.StatusOK, dto.QueueResponse{
		Artworks:   items,
		Pagination: dto.NewPagination(total, page, perPage),
	})
}

// Approve transitions a pending artwork to approved
// PUT /api/admin/approve/:id
func (h *AdminHandler) Approve(c *gin.Context) {
	artworkID, moderatorID, ok := h.moderationArgs(c)
	if !ok {
		return
	}

	if err := h.moderationService.Approve(moderatorID, artworkID); err != nil {
		h.writeModerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artwork approved successfully"})
}

// Reject transitions a pending artwork to rejected
// PUT /api/admin/reject/:id
func (h *AdminHandler) Reject(c *gin.Context) {
	artworkID, moderatorID, ok := h.moderationArgs(c)
	if !ok {
		return
	}

	// Feedback is optional; an empty body is fine.
	var req dto.RejectRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.moderationService.Reject(moderatorID, artworkID, req.Feedback); err != nil {
		h.writeModerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artwork rejected successfully"})
}

// Feature toggles is_featured on an approved artwork
// POST /api/admin/feature/:id
func (h *AdminHandler) Feature(c *gin.Context) {
	artworkID, _, ok := h.moderationArgs(c)
	if !ok {
		return
	}

	featured, err := h.moderationService.ToggleFeature(artworkID)
	if err != nil {
		h.writeModerationError(c, err)
		return
	}

	message := "Artwork unfeatured successfully"
	if featured {
		message = "Artwork featured successfully"
	}
	c.JSON(http.StatusOK, dto.FeatureResponse{Message: message, IsFeatured: featured})
}

// Stats returns the admin dashboard aggregates
// GET /api/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.statsService.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// DeleteUser removes an account and all dependent rows
// DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID := c.Param("id")

	if err := h.userService.DeleteUser(userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user deletion failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (h *AdminHandler) moderationArgs(c *gin.Context) (artworkID int64, moderatorID string, ok bool) {
	artworkID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid artwork ID"})
		return 0, "", false
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return 0, "", false
	}

	return artworkID, userID.(string), true
}

func (h *AdminHandler) writeModerationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrArtworkNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
	case errors.Is(err, service.ErrNotPending), errors.Is(err, service.ErrNotApproved):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "moderation action failed"})
	}
}
