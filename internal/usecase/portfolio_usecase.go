package usecase

import (
	"fmt"

	"zyro-visual/internal/entity"
	"zyro-visual/internal/repo"
	"zyro-visual/pkg/logger"
)

type PortfolioUseCase interface {
	ListItems() ([]*entity.PortfolioItem, error)
	GetItem(id int) (*entity.PortfolioItem, error)
	CreateItem(item *entity.PortfolioItem) (*entity.PortfolioItem, error)
	UpdateItem(id int, patch repo.PortfolioPatch) (*entity.PortfolioItem, error)
	DeleteItem(id int) (bool, error)
}

type portfolioUseCase struct {
	portfolio repo.PortfolioRepository
	logger    *logger.Logger
}

func NewPortfolioUseCase(portfolio repo.PortfolioRepository, logger *logger.Logger) PortfolioUseCase {
	return &portfolioUseCase{
		portfolio: portfolio,
		logger:    logger,
	}
}

func (uc *portfolioUseCase) ListItems() ([]*entity.PortfolioItem, error) {
	return uc.portfolio.List()
}

func (uc *portfolioUseCase) GetItem(id int) (*entity.PortfolioItem, error) {
	return uc.portfolio.GetByID(id)
}

func (uc *portfolioUseCase) CreateItem(item *entity.PortfolioItem) (*entity.PortfolioItem, error) {
	created, err := uc.portfolio.Create(item)
	if err != nil {
		uc.logger.Error("Failed to create portfolio item: %v", err)
		return nil, fmt.Errorf("failed to create portfolio item")
	}
	return created, nil
}

func (uc *portfolioUseCase) UpdateItem(id int, patch repo.PortfolioPatch) (*entity.PortfolioItem, error) {
	updated, err := uc.portfolio.Update(id, patch)
	if err != nil {
		uc.logger.Error("Failed to update portfolio item %d: %v", id, err)
		return nil, fmt.Errorf("failed to update portfolio item")
	}
	return updated, nil
}

func (uc *portfolioUseCase) DeleteItem(id int) (bool, error) {
	deleted, err := uc.portfolio.Delete(id)
	if err != nil {
		uc.logger.Error("Failed to delete portfolio item %d: %v", id, err)
		return false, fmt.Errorf("failed to delete portfolio item")
	}
	return deleted, nil
}
