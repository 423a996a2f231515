package http

import (
	"net/http"

	"zyro-visual/internal/entity"
	"zyro-visual/internal/repo"
	"zyro-visual/internal/usecase"
	"zyro-visual/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CreatorHandler struct {
	creatorUseCase usecase.CreatorUseCase
	logger         *logger.Logger
}

func NewCreatorHandler(creatorUseCase usecase.CreatorUseCase, logger *logger.Logger) *CreatorHandler {
	return &CreatorHandler{
		creatorUseCase: creatorUseCase,
		logger:         logger,
	}
}

type CreateCreatorRequest struct {
	Name        string  `json:"name" binding:"required,min=2"`
	Subscribers string  `json:"subscribers" binding:"required"`
	Testimonial *string `json:"testimonial"`
	AvatarURL   string  `json:"avatarUrl" binding:"omitempty,url"`
	Featured    *bool   `json:"featured"`
}

type UpdateCreatorRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2"`
	Subscribers *string `json:"subscribers"`
	Testimonial *string `json:"testimonial"`
	AvatarURL   *string `json:"avatarUrl" binding:"omitempty,url"`
	Featured    *bool   `json:"featured"`
}

// ListCreators godoc
// @Summary      List creators
// @Tags         creators
// @Produce      json
// @Success      200  {array}  entity.Creator
// @Router       /api/creators [get]
func (h *CreatorHandler) ListCreators(c *gin.Context) {
	creators, err := h.creatorUseCase.ListCreators()
	if err != nil {
		h.logger.Error("Failed to list creators: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch creators"})
		return
	}

	c.JSON(http.StatusOK, creators)
}

// GetCreator godoc
// @Summary      Get a creator
// @Tags         creators
// @Produce      json
// @Param        id path int true "Creator ID"
// @Success      200  {object}  entity.Creator
// @Failure      404  {object}  map[string]string
// @Router       /api/creators/{id} [get]
func (h *CreatorHandler) GetCreator(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	creator, err := h.creatorUseCase.GetCreator(id)
	if err != nil {
		h.logger.Error("Failed to get creator %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch creator"})
		return
	}
	if creator == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Creator not found"})
		return
	}

	c.JSON(http.StatusOK, creator)
}

// CreateCreator godoc
// @Summary      Create a creator
// @Tags         creators
// @Accept       json
// @Produce      json
// @Param        request body CreateCreatorRequest true "Creator"
// @Success      201  {object}  entity.Creator
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /api/creators [post]
func (h *CreatorHandler) CreateCreator(c *gin.Context) {
	var req CreateCreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	creator := &entity.Creator{
		Name:        req.Name,
		Subscribers: req.Subscribers,
		Testimonial: req.Testimonial,
		AvatarURL:   req.AvatarURL,
	}
	if req.Featured != nil {
		creator.Featured = *req.Featured
	}

	created, err := h.creatorUseCase.CreateCreator(creator)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create creator"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateCreator godoc
// @Summary      Update a creator
// @Tags         creators
// @Accept       json
// @Produce      json
// @Param        id path int true "Creator ID"
// @Param        request body UpdateCreatorRequest true "Fields to change"
// @Success      200  {object}  entity.Creator
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /api/creators/{id} [patch]
func (h *CreatorHandler) UpdateCreator(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateCreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	updated, err := h.creatorUseCase.UpdateCreator(id, repo.CreatorPatch{
		Name:        req.Name,
		Subscribers: req.Subscribers,
		Testimonial: req.Testimonial,
		AvatarURL:   req.AvatarURL,
		Featured:    req.Featured,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update creator"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Creator not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteCreator godoc
// @Summary      Delete a creator
// @Description  Testimonials referencing this creator keep their creatorId
// @Tags         creators
// @Produce      json
// @Param        id path int true "Creator ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/creators/{id} [delete]
func (h *CreatorHandler) DeleteCreator(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	deleted, err := h.creatorUseCase.DeleteCreator(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete creator"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": "Creator not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Creator deleted"})
}
