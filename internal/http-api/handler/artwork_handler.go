package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"artgrid/internal/http-api/dto"
	"artgrid/internal/http-api/repository"
	"artgrid/internal/http-api/service"
)

type ArtworkHandler struct {
	artworkService service.ArtworkService
	maxUploadBytes int64
}

func NewArtworkHandler(artworkService service.ArtworkService, maxUploadBytes int64) *ArtworkHandler {
	return &ArtworkHandler{artworkService: artworkService, maxUploadBytes: maxUploadBytes}
}

// RegisterRoutes registers artwork routes. The authed group carries the
// auth middleware; the public group does not.
func (h *ArtworkHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("", h.List)
	public.GET("/categories", h.Categories)
	public.GET("/:id", h.Get)
	authed.POST("/upload", h.Upload)
	authed.POST("/:id/like", h.ToggleLike)
}

// Upload submits a new artwork for moderation
// POST /api/artworks/upload (multipart form)
func (h *ArtworkHandler) Upload(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	title := c.PostForm("title")
	medium := c.PostForm("medium")
	category := c.PostForm("category")
	if title == "" || medium == "" || category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, medium, and category are required"})
		return
	}

	artwork, err := h.artworkService.Upload(c.Request.Context(), userID.(string), service.UploadInput{
		Title:        title,
		Description:  c.PostForm("description"),
		Medium:       medium,
		Category:     category,
		Tags:         c.PostForm("tags"),
		CreationDate: c.PostForm("creation_date"),
		File:         file,
		Filename:     header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFileTypeNotAllowed):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrUploadFailed):
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "artwork submission failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{
		Message:   "Artwork uploaded successfully",
		ArtworkID: artwork.ID,
		Status:    artwork.Status,
	})
}

// List returns approved artworks, newest first
// GET /api/artworks?page=1&per_page=12&category=...&medium=...&featured=true
func (h *ArtworkHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "12"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 12
	}

	filter := repository.ArtworkFilter{
		Category:     c.Query("category"),
		Medium:       c.Query("medium"),
		FeaturedOnly: c.Query("featured") == "true",
	}

	artworks, total, err := h.artworkService.List(filter, page, perPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list artworks"})
		return
	}

	responses := make([]dto.ArtworkResponse, 0, len(artworks))
	for i := range artworks {
		responses = append(responses, dto.FromModelToArtworkResponse(&artworks[i]))
	}

	c.JSON(http.StatusOK, dto.PaginatedArtworksResponse{
		Artworks:   responses,
		Pagination: dto.NewPagination(total, page, perPage),
	})
}

// Get returns a single approved artwork and counts the view
// GET /api/artworks/:id
func (h *ArtworkHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid artwork ID"})
		return
	}

	artwork, err := h.artworkService.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToArtworkResponse(artwork))
}

// ToggleLike flips the caller's like on an artwork
// POST /api/artworks/:id/like
func (h *ArtworkHandler) ToggleLike(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid artwork ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	liked, likesCount, err := h.artworkService.ToggleLike(userID.(string), id)
	if err != nil {
		if errors.Is(err, service.ErrArtworkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "like toggle failed"})
		return
	}

	c.JSON(http.StatusOK, dto.LikeResponse{Liked: liked, LikesCount: likesCount})
}

// Categories returns the static category and medium vocabularies
// GET /api/artworks/categories
func (h *ArtworkHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CategoriesResponse{
		Categories: service.Categories,
		Mediums:    service.Mediums,
	})
}
