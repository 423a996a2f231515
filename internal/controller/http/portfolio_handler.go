package http

import (
	"net/http"

	"zyro-visual/internal/entity"
	"zyro-visual/internal/repo"
	"zyro-visual/internal/usecase"
	"zyro-visual/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	portfolioUseCase usecase.PortfolioUseCase
	logger           *logger.Logger
}

func NewPortfolioHandler(portfolioUseCase usecase.PortfolioUseCase, logger *logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioUseCase: portfolioUseCase,
		logger:           logger,
	}
}

type CreatePortfolioItemRequest struct {
	Title        string `json:"title" binding:"required,min=2"`
	Description  string `json:"description"`
	VideoURL     string `json:"videoUrl" binding:"required,url"`
	ThumbnailURL string `json:"thumbnailUrl" binding:"omitempty,url"`
	Category     string `json:"category"`
	Featured     *bool  `json:"featured"`
}

type UpdatePortfolioItemRequest struct {
	Title        *string `json:"title" binding:"omitempty,min=2"`
	Description  *string `json:"description"`
	VideoURL     *string `json:"videoUrl" binding:"omitempty,url"`
	ThumbnailURL *string `json:"thumbnailUrl" binding:"omitempty,url"`
	Category     *string `json:"category"`
	Featured     *bool   `json:"featured"`
}

// ListPortfolio godoc
// @Summary      List portfolio items
// @Tags         portfolio
// @Produce      json
// @Success      200  {array}  entity.PortfolioItem
// @Router       /api/portfolio [get]
func (h *PortfolioHandler) ListPortfolio(c *gin.Context) {
	items, err := h.portfolioUseCase.ListItems()
	if err != nil {
		h.logger.Error("Failed to list portfolio items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch portfolio items"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetPortfolioItem godoc
// @Summary      Get a portfolio item
// @Tags         portfolio
// @Produce      json
// @Param        id path int true "Portfolio item ID"
// @Success      200  {object}  entity.PortfolioItem
// @Failure      404  {object}  map[string]string
// @Router       /api/portfolio/{id} [get]
func (h *PortfolioHandler) GetPortfolioItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	item, err := h.portfolioUseCase.GetItem(id)
	if err != nil {
		h.logger.Error("Failed to get portfolio item %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch portfolio item"})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Portfolio item not found"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// CreatePortfolioItem godoc
// @Summary      Create a portfolio item
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Param        request body CreatePortfolioItemRequest true "Portfolio item"
// @Success      201  {object}  entity.PortfolioItem
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /api/portfolio [post]
func (h *PortfolioHandler) CreatePortfolioItem(c *gin.Context) {
	var req CreatePortfolioItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	item := &entity.PortfolioItem{
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Category:     req.Category,
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}

	created, err := h.portfolioUseCase.CreateItem(item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create portfolio item"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdatePortfolioItem godoc
// @Summary      Update a portfolio item
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Param        id path int true "Portfolio item ID"
// @Param        request body UpdatePortfolioItemRequest true "Fields to change"
// @Success      200  {object}  entity.PortfolioItem
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /api/portfolio/{id} [patch]
func (h *PortfolioHandler) UpdatePortfolioItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdatePortfolioItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	updated, err := h.portfolioUseCase.UpdateItem(id, repo.PortfolioPatch{
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Category:     req.Category,
		Featured:     req.Featured,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update portfolio item"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Portfolio item not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeletePortfolioItem godoc
// @Summary      Delete a portfolio item
// @Tags         portfolio
// @Produce      json
// @Param        id path int true "Portfolio item ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/portfolio/{id} [delete]
func (h *PortfolioHandler) DeletePortfolioItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	deleted, err := h.portfolioUseCase.DeleteItem(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete portfolio item"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": "Portfolio item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Portfolio item deleted"})
}
