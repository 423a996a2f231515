package http

import (
	"net/http"

	"zyro-visual/internal/entity"
	"zyro-visual/internal/repo"
	"zyro-visual/internal/usecase"
	"zyro-visual/pkg/logger"

	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	testimonialUseCase usecase.TestimonialUseCase
	logger             *logger.Logger
}

func NewTestimonialHandler(testimonialUseCase usecase.TestimonialUseCase, logger *logger.Logger) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialUseCase: testimonialUseCase,
		logger:             logger,
	}
}

type CreateTestimonialRequest struct {
	Quote     string `json:"quote" binding:"required,min=5"`
	CreatorID *int   `json:"creatorId"`
	Rating    int    `json:"rating" binding:"required,gte=1,lte=5"`
	Featured  *bool  `json:"featured"`
}

type UpdateTestimonialRequest struct {
	Quote     *string `json:"quote" binding:"omitempty,min=5"`
	CreatorID *int    `json:"creatorId"`
	Rating    *int    `json:"rating" binding:"omitempty,gte=1,lte=5"`
	Featured  *bool   `json:"featured"`
}

// ListTestimonials godoc
// @Summary      List testimonials
// @Description  creatorId is a weak reference and may point at a deleted creator
// @Tags         testimonials
// @Produce      json
// @Success      200  {array}  entity.Testimonial
// @Router       /api/testimonials [get]
func (h *TestimonialHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.testimonialUseCase.ListTestimonials()
	if err != nil {
		h.logger.Error("Failed to list testimonials: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch testimonials"})
		return
	}

	c.JSON(http.StatusOK, testimonials)
}

// GetTestimonial godoc
// @Summary      Get a testimonial
// @Tags         testimonials
// @Produce      json
// @Param        id path int true "Testimonial ID"
// @Success      200  {object}  entity.Testimonial
// @Failure      404  {object}  map[string]string
// @Router       /api/testimonials/{id} [get]
func (h *TestimonialHandler) GetTestimonial(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	testimonial, err := h.testimonialUseCase.GetTestimonial(id)
	if err != nil {
		h.logger.Error("Failed to get testimonial %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch testimonial"})
		return
	}
	if testimonial == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Testimonial not found"})
		return
	}

	c.JSON(http.StatusOK, testimonial)
}

// CreateTestimonial godoc
// @Summary      Create a testimonial
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Param        request body CreateTestimonialRequest true "Testimonial"
// @Success      201  {object}  entity.Testimonial
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /api/testimonials [post]
func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var req CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	testimonial := &entity.Testimonial{
		Quote:     req.Quote,
		CreatorID: req.CreatorID,
		Rating:    req.Rating,
	}
	if req.Featured != nil {
		testimonial.Featured = *req.Featured
	}

	created, err := h.testimonialUseCase.CreateTestimonial(testimonial)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create testimonial"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateTestimonial godoc
// @Summary      Update a testimonial
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Param        id path int true "Testimonial ID"
// @Param        request body UpdateTestimonialRequest true "Fields to change"
// @Success      200  {object}  entity.Testimonial
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /api/testimonials/{id} [patch]
func (h *TestimonialHandler) UpdateTestimonial(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	updated, err := h.testimonialUseCase.UpdateTestimonial(id, repo.TestimonialPatch{
		Quote:     req.Quote,
		CreatorID: req.CreatorID,
		Rating:    req.Rating,
		Featured:  req.Featured,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update testimonial"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Testimonial not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteTestimonial godoc
// @Summary      Delete a testimonial
// @Tags         testimonials
// @Produce      json
// @Param        id path int true "Testimonial ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/testimonials/{id} [delete]
func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	deleted, err := h.testimonialUseCase.DeleteTestimonial(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete testimonial"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": "Testimonial not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted"})
}
