package usecase

import (
	"fmt"

	"zyro-visual/internal/entity"
	"zyro-visual/internal/repo"
	"zyro-visual/pkg/logger"
)

type CreatorUseCase interface {
	ListCreators() ([]*entity.Creator, error)
	GetCreator(id int) (*entity.Creator, error)
	CreateCreator(creator *entity.Creator) (*entity.Creator, error)
	UpdateCreator(id int, patch repo.CreatorPatch) (*entity.Creator, error)
	DeleteCreator(id int) (bool, error)
}

type creatorUseCase struct {
	creators repo.CreatorRepository
	logger   *logger.Logger
}

func NewCreatorUseCase(creators repo.CreatorRepository, logger *logger.Logger) CreatorUseCase {
	return &creatorUseCase{
		creators: creators,
		logger:   logger,
	}
}

func (uc *creatorUseCase) ListCreators() ([]*entity.Creator, error) {
	return uc.creators.List()
}

func (uc *creatorUseCase) GetCreator(id int) (*entity.Creator, error) {
	return uc.creators.GetByID(id)
}

func (uc *creatorUseCase) CreateCreator(creator *entity.Creator) (*entity.Creator, error) {
	created, err := uc.creators.Create(creator)
	if err != nil {
		uc.logger.Error("Failed to create creator: %v", err)
		return nil, fmt.Errorf("failed to create creator")
	}
	return created, nil
}

func (uc *creatorUseCase) UpdateCreator(id int, patch repo.CreatorPatch) (*entity.Creator, error) {
	updated, err := uc.creators.Update(id, patch)
	if err != nil {
		uc.logger.Error("Failed to update creator %d: %v", id, err)
		return nil, fmt.Errorf("failed to update creator")
	}
	return updated, nil
}

func (uc *creatorUseCase) DeleteCreator(id int) (bool, error) {
	deleted, err := uc.creators.Delete(id)
	if err != nil {
		uc.logger.Error("Failed to delete creator %d: %v", id, err)
		return false, fmt.Errorf("failed to delete creator")
	}
	return deleted, nil
}
