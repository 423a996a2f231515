package http

import (
	"net/http"
	"path/filepath"

	"zyro-visual/internal/usecase"
	"zyro-visual/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadUseCase usecase.UploadUseCase
	logger        *logger.Logger
}

func NewUploadHandler(uploadUseCase usecase.UploadUseCase, logger *logger.Logger) *UploadHandler {
	return &UploadHandler{
		uploadUseCase: uploadUseCase,
		logger:        logger,
	}
}

// UploadImage godoc
// @Summary      Upload an image
// @Description  Store a thumbnail or avatar image and return its public URL
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        image formData file true "Image file"
// @Param        folder formData string false "Target folder (thumbnails or avatars)"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/uploads [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image file is required"})
		return
	}

	ext := filepath.Ext(file.Filename)
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".gif" && ext != ".webp" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid image format. Only jpg, jpeg, png, gif, webp are allowed"})
		return
	}

	folder := c.PostForm("folder")
	if folder != "avatars" {
		folder = "thumbnails"
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to process file"})
		return
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	url, err := h.uploadUseCase.UploadImage(folder, ext, contentType, src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
