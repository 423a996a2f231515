package persistent

import (
	"zyro-visual/internal/entity"
	"zyro-visual/internal/model"
	"zyro-visual/internal/repo"

	"gorm.io/gorm"
)

type portfolioRepository struct {
	db *gorm.DB
}

func (r *portfolioRepository) List() ([]*entity.PortfolioItem, error) {
	var itemModels []model.PortfolioItemModel
	if err := r.db.Order("id asc").Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]*entity.PortfolioItem, len(itemModels))
	for i := range itemModels {
		items[i] = toPortfolioEntity(&itemModels[i])
	}
	return items, nil
}

func (r *portfolioRepository) GetByID(id int) (*entity.PortfolioItem, error) {
	var itemModel model.PortfolioItemModel
	if err := r.db.Where("id = ?", id).First(&itemModel).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toPortfolioEntity(&itemModel), nil
}

func (r *portfolioRepository) Create(item *entity.PortfolioItem) (*entity.PortfolioItem, error) {
	itemModel := toPortfolioModel(item)
	itemModel.ID = 0
	if err := r.db.Create(itemModel).Error; err != nil {
		return nil, err
	}
	return toPortfolioEntity(itemModel), nil
}

func (r *portfolioRepository) Update(id int, patch repo.PortfolioPatch) (*entity.PortfolioItem, error) {
	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.VideoURL != nil {
		updates["video_url"] = *patch.VideoURL
	}
	if patch.ThumbnailURL != nil {
		updates["thumbnail_url"] = *patch.ThumbnailURL
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Featured != nil {
		updates["featured"] = *patch.Featured
	}
	if len(updates) == 0 {
		return r.GetByID(id)
	}

	result := r.db.Model(&model.PortfolioItemModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(id)
}

func (r *portfolioRepository) Delete(id int) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&model.PortfolioItemModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
