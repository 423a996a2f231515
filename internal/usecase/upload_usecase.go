package usecase

import (
	"fmt"
	"io"

	"zyro-visual/pkg/logger"
	"zyro-visual/pkg/s3"

	"github.com/google/uuid"
)

type UploadUseCase interface {
	UploadImage(folder, ext, contentType string, file io.Reader) (string, error)
}

type uploadUseCase struct {
	s3Client *s3.Client
	logger   *logger.Logger
}

func NewUploadUseCase(s3Client *s3.Client, logger *logger.Logger) UploadUseCase {
	return &uploadUseCase{
		s3Client: s3Client,
		logger:   logger,
	}
}

// UploadImage stores an image under a random key and returns its public URL,
// ready to be used as a thumbnailUrl or avatarUrl.
func (uc *uploadUseCase) UploadImage(folder, ext, contentType string, file io.Reader) (string, error) {
	key := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)

	url, err := uc.s3Client.UploadFile(key, file, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload image %s: %v", key, err)
		return "", fmt.Errorf("failed to upload image")
	}
	return url, nil
}
