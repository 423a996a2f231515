package usecase

import (
	"fmt"

	"zyro-visual/internal/entity"
	"zyro-visual/internal/repo"
	"zyro-visual/pkg/logger"
)

type VideoContentUseCase interface {
	ListVideoContent() ([]*entity.VideoContent, error)
	GetVideoContent(id int) (*entity.VideoContent, error)
	CreateVideoContent(content *entity.VideoContent) (*entity.VideoContent, error)
	UpdateVideoContent(id int, patch repo.VideoContentPatch) (*entity.VideoContent, error)
	DeleteVideoContent(id int) (bool, error)
}

type videoContentUseCase struct {
	videoContent repo.VideoContentRepository
	logger       *logger.Logger
}

func NewVideoContentUseCase(videoContent repo.VideoContentRepository, logger *logger.Logger) VideoContentUseCase {
	return &videoContentUseCase{
		videoContent: videoContent,
		logger:       logger,
	}
}

func (uc *videoContentUseCase) ListVideoContent() ([]*entity.VideoContent, error) {
	return uc.videoContent.List()
}

func (uc *videoContentUseCase) GetVideoContent(id int) (*entity.VideoContent, error) {
	return uc.videoContent.GetByID(id)
}

func (uc *videoContentUseCase) CreateVideoContent(content *entity.VideoContent) (*entity.VideoContent, error) {
	created, err := uc.videoContent.Create(content)
	if err != nil {
		uc.logger.Error("Failed to create video content: %v", err)
		return nil, fmt.Errorf("failed to create video content")
	}
	return created, nil
}

func (uc *videoContentUseCase) UpdateVideoContent(id int, patch repo.VideoContentPatch) (*entity.VideoContent, error) {
	updated, err := uc.videoContent.Update(id, patch)
	if err != nil {
		uc.logger.Error("Failed to update video content %d: %v", id, err)
		return nil, fmt.Errorf("failed to update video content")
	}
	return updated, nil
}

func (uc *videoContentUseCase) DeleteVideoContent(id int) (bool, error) {
	deleted, err := uc.videoContent.Delete(id)
	if err != nil {
		uc.logger.Error("Failed to delete video content %d: %v", id, err)
		return false, fmt.Errorf("failed to delete video content")
	}
	return deleted, nil
}
