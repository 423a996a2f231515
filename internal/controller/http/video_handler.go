package http

import (
	"net/http"

	"zyro-visual/internal/entity"
	"zyro-visual/internal/repo"
	"zyro-visual/internal/usecase"
	"zyro-visual/pkg/logger"

	"github.com/gin-gonic/gin"
)

type VideoContentHandler struct {
	videoUseCase usecase.VideoContentUseCase
	logger       *logger.Logger
}

func NewVideoContentHandler(videoUseCase usecase.VideoContentUseCase, logger *logger.Logger) *VideoContentHandler {
	return &VideoContentHandler{
		videoUseCase: videoUseCase,
		logger:       logger,
	}
}

// The before_after pairing rule (beforeVideoUrl + afterVideoUrl together) is
// checked by the admin form, not here. The API accepts whatever URL set the
// caller provides for the chosen section.
type CreateVideoContentRequest struct {
	Section        string `json:"section" binding:"required,oneof=hero portfolio before_after"`
	Title          string `json:"title" binding:"required,min=2"`
	Description    string `json:"description"`
	VideoURL       string `json:"videoUrl" binding:"omitempty,url"`
	BeforeVideoURL string `json:"beforeVideoUrl" binding:"omitempty,url"`
	AfterVideoURL  string `json:"afterVideoUrl" binding:"omitempty,url"`
	ThumbnailURL   string `json:"thumbnailUrl" binding:"omitempty,url"`
	Active         *bool  `json:"active"`
}

type UpdateVideoContentRequest struct {
	Section        *string `json:"section" binding:"omitempty,oneof=hero portfolio before_after"`
	Title          *string `json:"title" binding:"omitempty,min=2"`
	Description    *string `json:"description"`
	VideoURL       *string `json:"videoUrl" binding:"omitempty,url"`
	BeforeVideoURL *string `json:"beforeVideoUrl" binding:"omitempty,url"`
	AfterVideoURL  *string `json:"afterVideoUrl" binding:"omitempty,url"`
	ThumbnailURL   *string `json:"thumbnailUrl" binding:"omitempty,url"`
	Active         *bool   `json:"active"`
}

// ListVideoContent godoc
// @Summary      List video content
// @Tags         video-content
// @Produce      json
// @Success      200  {array}  entity.VideoContent
// @Router       /api/video-content [get]
func (h *VideoContentHandler) ListVideoContent(c *gin.Context) {
	contents, err := h.videoUseCase.ListVideoContent()
	if err != nil {
		h.logger.Error("Failed to list video content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch video content"})
		return
	}

	c.JSON(http.StatusOK, contents)
}

// GetVideoContent godoc
// @Summary      Get a video content record
// @Tags         video-content
// @Produce      json
// @Param        id path int true "Video content ID"
// @Success      200  {object}  entity.VideoContent
// @Failure      404  {object}  map[string]string
// @Router       /api/video-content/{id} [get]
func (h *VideoContentHandler) GetVideoContent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	content, err := h.videoUseCase.GetVideoContent(id)
	if err != nil {
		h.logger.Error("Failed to get video content %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch video content"})
		return
	}
	if content == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Video content not found"})
		return
	}

	c.JSON(http.StatusOK, content)
}

// CreateVideoContent godoc
// @Summary      Create a video content record
// @Tags         video-content
// @Accept       json
// @Produce      json
// @Param        request body CreateVideoContentRequest true "Video content"
// @Success      201  {object}  entity.VideoContent
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /api/video-content [post]
func (h *VideoContentHandler) CreateVideoContent(c *gin.Context) {
	var req CreateVideoContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	content := &entity.VideoContent{
		Section:        entity.VideoSection(req.Section),
		Title:          req.Title,
		Description:    req.Description,
		VideoURL:       req.VideoURL,
		BeforeVideoURL: req.BeforeVideoURL,
		AfterVideoURL:  req.AfterVideoURL,
		ThumbnailURL:   req.ThumbnailURL,
		Active:         true,
	}
	if req.Active != nil {
		content.Active = *req.Active
	}

	created, err := h.videoUseCase.CreateVideoContent(content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create video content"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateVideoContent godoc
// @Summary      Update a video content record
// @Tags         video-content
// @Accept       json
// @Produce      json
// @Param        id path int true "Video content ID"
// @Param        request body UpdateVideoContentRequest true "Fields to change"
// @Success      200  {object}  entity.VideoContent
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /api/video-content/{id} [patch]
func (h *VideoContentHandler) UpdateVideoContent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateVideoContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	patch := repo.VideoContentPatch{
		Title:          req.Title,
		Description:    req.Description,
		VideoURL:       req.VideoURL,
		BeforeVideoURL: req.BeforeVideoURL,
		AfterVideoURL:  req.AfterVideoURL,
		ThumbnailURL:   req.ThumbnailURL,
		Active:         req.Active,
	}
	if req.Section != nil {
		section := entity.VideoSection(*req.Section)
		patch.Section = &section
	}

	updated, err := h.videoUseCase.UpdateVideoContent(id, patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update video content"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Video content not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteVideoContent godoc
// @Summary      Delete a video content record
// @Tags         video-content
// @Produce      json
// @Param        id path int true "Video content ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/video-content/{id} [delete]
func (h *VideoContentHandler) DeleteVideoContent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	deleted, err := h.videoUseCase.DeleteVideoContent(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete video content"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": "Video content not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Video content deleted"})
}
